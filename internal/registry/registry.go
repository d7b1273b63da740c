// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/maze"
)

// Frontend is everything the maze engine talks to: buttons, a display and
// the feedback actuators. A frontend owns its resources from Create until
// Close.
type Frontend interface {
	maze.Input
	maze.Display
	maze.Feedback

	// Done is closed when the user asks to quit from the frontend itself
	// (e.g. pressing q in a terminal UI). It may never close.
	Done() <-chan struct{}

	// Close releases every resource acquired by the factory.
	// Safe to call more than once.
	Close() error
}

// Env is what a factory gets to build a frontend.
type Env struct {
	Config config.Config
	Logger *log.Logger
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory acquires the resources of a frontend.
type Factory func(env Env) (Frontend, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, env Env) (Frontend, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}

	fe, err := f(env)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot start frontend %q: %w", id, err)
	}
	return fe, nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

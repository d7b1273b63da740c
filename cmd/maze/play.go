package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/maze"
	"github.com/vovakirdan/button-maze/internal/records"
	"github.com/vovakirdan/button-maze/internal/registry"
	"github.com/vovakirdan/button-maze/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/button-maze/internal/platform/console"
	_ "github.com/vovakirdan/button-maze/internal/platform/rpi"
	_ "github.com/vovakirdan/button-maze/internal/platform/tui"
)

var (
	flagFrontend string
	flagRecords  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze",
	Long: `Start the maze and keep playing until interrupted.

Buttons:
  1 / Up     - Easy, or move up
  2 / Down   - Normal, or move down
  3 / Left   - Hard, or move left
  4 / Right  - Records, or move right
  Q/Ctrl+C   - Quit (tui and console)

Records live for the process only. --records sqlite keeps them in an
in-memory SQLite database and logs per-difficulty stats on exit.

Examples:
  maze play
  maze play --frontend console
  maze play --frontend gpio --seed 42
  maze play --records sqlite --log-file maze.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui, console, gpio")
	playCmd.Flags().StringVar(&flagRecords, "records", "memory", "Records store: memory, sqlite")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	// Check if frontend exists
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'maze list' to see available frontends", flagFrontend)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rules, err := maze.RulesFromConfig(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagFrontend == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore, err := openStore(flagRecords, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fe, err := registry.Create(flagFrontend, registry.Env{Config: cfg, Logger: logger})
	if err != nil {
		closeStore()
		return err
	}

	// Quitting from the UI ends the run like a signal does.
	go func() {
		select {
		case <-fe.Done():
			stop()
		case <-ctx.Done():
		}
	}()

	m := maze.NewMachine(rules, maze.Peripherals{Input: fe, Display: fe, Feedback: fe}, store,
		maze.WithSeed(flagSeed),
		maze.WithLogger(logger.With("frontend", flagFrontend, "records", flagRecords)),
		maze.WithCleanup(closeStore),
		maze.WithCleanup(fe.Close),
	)
	return m.Run(ctx)
}

// openStore creates the records store selected by kind.
func openStore(kind string, logger *log.Logger) (records.Store, func() error, error) {
	switch kind {
	case "memory":
		return records.NewLog(), func() error { return nil }, nil
	case "sqlite":
		s, err := storage.OpenMemory()
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			if stats, err := s.Stats(); err == nil {
				for _, st := range stats {
					logger.Info("records", "difficulty", st.Difficulty, "wins", st.Count,
						"best", st.BestSeconds, "most_bonus", st.MostBonus)
				}
			} else {
				logger.Warn("cannot read record stats", "error", err)
			}
			return s.Close()
		}
		return s, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown records store %q (memory, sqlite)", kind)
	}
}

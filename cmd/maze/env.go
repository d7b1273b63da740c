package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFlags maps environment variables to the flags they default.
var envFlags = map[string]string{
	"MAZE_CONFIG":    "config",
	"MAZE_LOG_LEVEL": "log-level",
	"MAZE_FRONTEND":  "frontend",
}

// applyEnv loads .env and copies MAZE_* variables into flags that were not
// set on the command line.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

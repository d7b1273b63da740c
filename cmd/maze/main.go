// maze is a grid maze played with four buttons. The same buttons pick a
// difficulty, open the records view and move the player.
//
// Usage:
//
//	maze play               - Play with the default frontend (tui)
//	maze play --frontend X  - Play with another frontend (console, gpio)
//	maze list               - List available frontends
//	maze config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a maze config YAML
//	--seed <value>      - Set RNG seed for reproducible grids
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
//
// A .env file in the working directory may set MAZE_CONFIG, MAZE_LOG_LEVEL
// and MAZE_FRONTEND; flags given on the command line win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Button Maze - find the way through a random grid",
	Long: `Button Maze generates a grid with walls and bonus cells and gives you
a limited number of moves to get from S to $. Bonus cells grant extra moves.

Available commands:
  play     - Play the maze
  list     - Show all available frontends
  config   - Print the effective configuration

Examples:
  maze play
  maze play --frontend console --records sqlite
  maze play --frontend gpio --log-level debug
  maze config --defaults > configs/maze.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to maze config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

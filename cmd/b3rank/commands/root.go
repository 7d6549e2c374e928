package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "b3rank",
	Short: "Magic-formula ranking for the B3 equity universe",
	Long: `b3rank ranks a fixed B3 stock universe by Joel Greenblatt's magic
formula (earnings yield + 0.33 * return on capital) blended with 6-month
and 1-month price momentum and a six-month breakout signal.

Usage:
  go run ./cmd/b3rank [command]

Examples:
  go run ./cmd/b3rank run
  go run ./cmd/b3rank run --lang pt
  go run ./cmd/b3rank api --port 8090
  go run ./cmd/b3rank universe`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfalmeida/b3rank/internal/universe"
)

// universeCmd represents the universe command
var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "List the fixed B3 ticker universe",
	Long: `Prints the ordered ticker universe the pipeline iterates. The order
matters: equal composite scores are tie-broken by it.`,
	RunE: runUniverse,
}

func init() {
	rootCmd.AddCommand(universeCmd)
}

func runUniverse(cmd *cobra.Command, args []string) error {
	tickers := universe.Tickers()

	PrintHeader(fmt.Sprintf("B3 Universe (%d tickers)", len(tickers)))
	for i, ticker := range tickers {
		fmt.Printf("%4d  %s\n", i+1, ticker)
	}

	return nil
}

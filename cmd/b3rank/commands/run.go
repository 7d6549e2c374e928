package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfalmeida/b3rank/internal/contracts"
	"github.com/rfalmeida/b3rank/internal/external/eodhd"
	"github.com/rfalmeida/b3rank/internal/external/yahoo"
	"github.com/rfalmeida/b3rank/internal/i18n"
	"github.com/rfalmeida/b3rank/internal/pipeline"
	"github.com/rfalmeida/b3rank/internal/universe"
	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ranking pipeline and print the table",
	Long: `Runs the full fetch-score-rank pipeline over the B3 universe and
prints the ranked table, the run summary and any per-ticker diagnostics.

The whole universe is fetched sequentially with a fixed delay between
tickers; with the default 200ms pacing a full run takes a few minutes.

Example:
  go run ./cmd/b3rank run
  go run ./cmd/b3rank run --lang pt`,
	RunE: runPipeline,
}

var (
	runLang string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runLang, "lang", "en", "display language (en|pt)")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)
	lang := i18n.Parse(runLang)

	httpClient := httputil.New(cfg, log)
	dataClient := eodhd.NewClient(cfg, httpClient, log)
	fxClient := yahoo.NewClient(cfg, httpClient, log)

	runner := pipeline.New(dataClient, dataClient, fxClient, pipeline.Params{
		Universe:          universe.Tickers(),
		WindowStart:       cfg.Pipeline.WindowStart,
		RequestDelay:      cfg.Pipeline.RequestDelay,
		PriceLookbackDays: cfg.Pipeline.PriceLookbackDays,
		Weights:           pipeline.DefaultWeightConfig(),
	}, log)

	PrintHeader(i18n.T(lang, "title"))
	fmt.Println(i18n.T(lang, "formula"))
	fmt.Println()

	result, err := runner.Run(context.Background())
	if err != nil {
		PrintError(err.Error())
		return err
	}

	if !result.HasRows() {
		PrintWarning(i18n.T(lang, "no_data"))
		printSummary(lang, result)
		return nil
	}

	fmt.Println()
	fmt.Println(i18n.T(lang, "table_header"))
	fmt.Println(i18n.TickerCounter(lang, len(result.Rows)))
	PrintSeparator()
	printTable(result.Rows)

	printSummary(lang, result)
	printDiagnostics(result)
	return nil
}

func printSummary(lang i18n.Language, result *contracts.RunResult) {
	fmt.Println()
	PrintSuccess(i18n.Summary(lang,
		result.Summary.OK, result.Summary.NegativeOrZero, result.Summary.Failed))
}

func printTable(rows []contracts.ScoredRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tTicker\tReport Date\tEarnings Yield\tReturn on Capital\t6m Momentum\t1m Momentum\tBreakout\tWeighted\tComposite")

	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f%%\t%.2f%%\t%s\t%s\t%d\t%.2f\t%.2f\n",
			row.Rank,
			row.Ticker,
			row.ReportDate.Format("2006-01-02"),
			row.EarningsYield,
			row.ReturnOnCapital,
			formatPct(row.Momentum6M),
			formatPct(row.Momentum1M),
			row.Breakout,
			row.WeightedScore,
			row.CompositeScore,
		)
	}

	_ = w.Flush()
}

func printDiagnostics(result *contracts.RunResult) {
	if len(result.Diagnostics) == 0 {
		return
	}

	fmt.Println()
	PrintSeparator()
	for _, d := range result.Diagnostics {
		PrintWarning(fmt.Sprintf("%s: %s", d.Ticker, d.Message))
	}
}

// formatPct renders a nullable percentage, "-" when absent
func formatPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

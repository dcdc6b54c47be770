// Package cmd provides the quotectl commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every command.
type globalOptions struct {
	ratesFile string
	verbose   bool
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Price print jobs offline",
		Long: `quotectl prices print jobs with the same engine as the quote service,
reading the rates from a JSON rate document instead of the database.

Examples:
  quotectl quote --rates rates.json --product flyer --quantity 500 --mode rectoVerso --paper couche-135-mat
  quotectl summary --rates rates.json --job job.json
  quotectl rates check rates.json`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.Init(logger.Config{Level: level, Pretty: true, Output: cmd.ErrOrStderr()})
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.ratesFile, "rates", os.Getenv("PRICING_RATES_FILE"), "JSON rate document (default $PRICING_RATES_FILE)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newQuoteCmd(opts),
		newSummaryCmd(opts),
		newRatesCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs quotectl against stdout.
func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

// calculator loads the rate document and builds an uncached quote service.
// Without a document the engine runs on the empty default rates.
func (o *globalOptions) calculator() (*service.QuoteService, error) {
	if o.ratesFile == "" {
		log.Warn().Msg("No rate document given, using default configuration")
		return service.NewQuoteService(pricing.DefaultConfiguration()), nil
	}

	cfg, repairs, err := readRates(o.ratesFile)
	if err != nil {
		return nil, err
	}
	for _, r := range repairs {
		log.Warn().Str("file", o.ratesFile).Str("repair", r).Msg("Repaired rate configuration")
	}
	return service.NewQuoteService(cfg), nil
}

func readRates(path string) (pricing.Configuration, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pricing.Configuration{}, nil, fmt.Errorf("failed to read rate file: %w", err)
	}
	return pricing.ParseConfiguration(data)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quotectl version 1.0.0")
		},
	}
}

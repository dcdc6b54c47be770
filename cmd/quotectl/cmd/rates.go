package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRatesCmd() *cobra.Command {
	rates := &cobra.Command{
		Use:   "rates",
		Short: "Inspect rate documents",
	}
	rates.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a rate document",
		Long: `Decode a rate document, list the repairs applied while loading it and
report the product tables it lacks. Exits non-zero when a table is missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repairs, err := readRates(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range repairs {
				fmt.Fprintf(out, "repaired: %s\n", r)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	})
	return rates
}

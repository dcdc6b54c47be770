package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/spf13/cobra"
)

// jobFlags describe one print job, either inline or as a JSON file in the
// request format of the HTTP API.
type jobFlags struct {
	jobFile string
	req     dto.CalculateQuoteRequest
	asJSON  bool
}

func (f *jobFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.jobFile, "job", "", "JSON job file, same shape as the /api/pricing/quote body")
	fs.StringVarP(&f.req.Product, "product", "p", "", "product: flyer, carte, depliant, entete, affiche, livre, brochure")
	fs.IntVarP(&f.req.Quantity, "quantity", "q", 0, "number of copies")
	fs.StringVar(&f.req.Design, "design", "", "design service: conception, layout or correction")
	fs.StringVar(&f.req.Options.Mode, "mode", "", "printing side: recto or rectoVerso")
	fs.StringVar(&f.req.Options.Finish, "finish", "", "card finish: recto or pellicule")
	fs.StringVar(&f.req.Options.Format, "format", "", "format: A4, A5, A3 or A3+ (a3plus)")
	fs.IntVar(&f.req.Options.Pages, "pages", 0, "page count for books and brochures")
	fs.StringVar(&f.req.Options.CoverType, "cover-type", "", "cover side for books and brochures")
	fs.StringVar(&f.req.Options.Pelliculage, "pelliculage", "", "cover lamination: avec or sans")
	fs.StringVar(&f.req.Options.Paper, "paper", "", "paper code, e.g. offset-80 or couche-135-mat")
	fs.StringVar(&f.req.Options.PaperInt, "paper-int", "", "inner paper code")
	fs.StringVar(&f.req.Options.PaperCov, "paper-cov", "", "cover paper code")
	fs.StringVar(&f.req.Options.Finition, "finition", "", "binding")
	fs.BoolVar(&f.asJSON, "json", false, "print JSON instead of text")
}

// request returns the job, reading the job file when one is given.
func (f *jobFlags) request() (service.QuoteRequest, error) {
	req := f.req
	if f.jobFile != "" {
		data, err := os.ReadFile(f.jobFile)
		if err != nil {
			return service.QuoteRequest{}, fmt.Errorf("failed to read job file: %w", err)
		}
		req = dto.CalculateQuoteRequest{}
		if err := json.Unmarshal(data, &req); err != nil {
			return service.QuoteRequest{}, fmt.Errorf("failed to decode job file: %w", err)
		}
	}
	if err := req.Validate(); err != nil {
		return service.QuoteRequest{}, err
	}

	product, opts, design := req.Resolve()
	return service.QuoteRequest{Product: product, Options: opts, Quantity: req.Quantity, Design: design}, nil
}

func newQuoteCmd(global *globalOptions) *cobra.Command {
	flags := &jobFlags{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a print job",
		Long: `Price a print job and print its itemized quote.

Examples:
  quotectl quote --rates rates.json -p flyer -q 500 --mode rectoVerso --paper couche-135-mat
  quotectl quote --rates rates.json -p carte -q 1000 --finish pellicule --design layout --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			calc, err := global.calculator()
			if err != nil {
				return err
			}

			summary, quote, err := calc.Summary(cmd.Context(), req)
			if err != nil {
				return err
			}
			if flags.asJSON {
				return writeJSON(cmd, dto.NewQuoteResponse(quote, summary))
			}
			printQuote(cmd, quote, summary)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newSummaryCmd(global *globalOptions) *cobra.Command {
	flags := &jobFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the job ticket of a print job",
		Long: `Print the configuration text of a print job. A job that cannot be priced
prints "Configuration non disponible" and exits successfully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			calc, err := global.calculator()
			if err != nil {
				return err
			}

			summary, _, _ := calc.Summary(cmd.Context(), req)
			if flags.asJSON {
				return writeJSON(cmd, dto.SummaryResponse{Summary: summary})
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func printQuote(cmd *cobra.Command, q *pricing.Quote, summary string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, summary)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-28s %s\n", "Prix de base", pricing.FormatPrice(q.BasePrice))
	for _, s := range q.Surcharges {
		fmt.Fprintf(out, "%-28s %s\n", s.Label, pricing.FormatPrice(s.Amount))
	}
	for _, a := range q.Adjustments {
		fmt.Fprintf(out, "%-28s %s\n", a.Label, pricing.FormatPrice(a.Amount))
	}
	if q.Design != nil {
		fmt.Fprintf(out, "%-28s %s\n", "PAO", pricing.FormatPrice(q.DesignCost))
	}
	fmt.Fprintf(out, "%-28s %s\n", "Total", pricing.FormatPrice(q.Total))
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

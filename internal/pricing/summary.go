package pricing

import (
	"fmt"
	"strings"
)

// SummaryUnavailable is rendered when a quote cannot be calculated.
const SummaryUnavailable = "Configuration non disponible"

// RenderSummary formats the resolved configuration of a quote as the
// multi-line text printed on job tickets.
func RenderSummary(q *Quote) string {
	if q == nil {
		return SummaryUnavailable
	}

	d := q.Details
	var b strings.Builder

	switch q.ProductType {
	case ProductFlyer:
		fmt.Fprintf(&b, "Format Standard\nImpression: %s\nPapier: %s", d.Printing, d.Paper)
	case ProductCard:
		fmt.Fprintf(&b, "Finition: %s\nPapier: %s", d.Finish, d.Paper)
	case ProductLeaflet:
		fmt.Fprintf(&b, "3 Volets (A4 Ouvert)\nPapier: %s", d.Paper)
	case ProductLetterhead:
		fmt.Fprintf(&b, "Format A4\nPapier: %s", d.Paper)
	case ProductBrochure:
		fmt.Fprintf(&b, "Format: %s - %d Pages\nFinition: %s\n\n", d.Format, d.Pages, d.Binding)
		writeCover(&b, d)
	case ProductBook:
		fmt.Fprintf(&b, "Format: %s - %d Pages\nReliure: %s\n\n", d.Format, d.Pages, d.Binding)
		writeCover(&b, d)
	case ProductPoster:
		fmt.Fprintf(&b, "Grand Format %s\nPapier: %s", d.Format, d.Paper)
	}

	if q.Design != nil {
		fmt.Fprintf(&b, "\n\n[OPTION GRAPHIQUE]: %s", q.Design.Description)
	}
	return b.String()
}

func writeCover(b *strings.Builder, d Details) {
	finish := "SANS Pelliculage"
	if d.Lamination == "Oui" {
		finish = "AVEC Pelliculage"
	}
	fmt.Fprintf(b, "Papier Intérieur: %s\nPapier Couverture: %s\n>>> Impression Couv: %s\n>>> Finition Couv: %s",
		d.InnerPaper, d.CoverPaper, d.CoverPrinting, finish)
}

// Summary calculates a quote and renders its summary, or the unavailable
// marker when the quote fails.
func (e *Engine) Summary(product ProductType, opts Options, quantity int, design *DesignRequest) string {
	q, err := e.Calculate(product, opts, quantity, design)
	if err != nil {
		return SummaryUnavailable
	}
	return RenderSummary(q)
}

package pricing

const (
	defaultBrochurePages   = 8
	defaultBrochureBinding = "Piquée à cheval"
)

var (
	defaultBrochureInner = CoatedPaper(90, FinishMatte)
	defaultBrochureCover = CoatedPaper(250, FinishMatte)
)

// priceBrochure prices a stapled color brochure per press sheet. One volume
// band, chosen from interior and cover sheets together, sets the sheet price
// of both parts.
func priceBrochure(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	pages := opts.pagesOr(defaultBrochurePages)
	format := opts.formatOr(FormatA4)
	coverSide := opts.sideOr(SideRecto)
	inner := paperOr(opts.InnerPaper, defaultBrochureInner)
	cover := paperOr(opts.CoverPaper, defaultBrochureCover)
	binding := opts.Binding
	if binding == "" {
		binding = defaultBrochureBinding
	}

	innerSheets := InteriorSheets(pages, format, quantity)
	coverSheets := CoverSheets(format, quantity)
	total := innerSheets + coverSheets

	innerPrice := ColorSheetPrice(total)
	coverPrice := innerPrice
	if coverSide == SideRecto {
		coverPrice = SingleSidedSheetPrice(total)
	}

	job := PricedJob{
		Base: float64(innerSheets)*innerPrice + float64(coverSheets)*coverPrice,
		Details: Details{
			Format:        format.Label(),
			Pages:         pages,
			Binding:       binding,
			InnerPaper:    inner.DisplayName(),
			CoverPaper:    cover.DisplayName(),
			CoverPrinting: coverSide.Label(),
			Lamination:    laminationLabel(opts.Lamination),
		},
	}

	paper := inner.Surcharge(innerSheets, cfg.Fixed) + cover.Surcharge(coverSheets, cfg.Fixed)
	job.Surcharges = paperLine(job.Surcharges, "Supplément papier", paper)
	if opts.Lamination {
		job.Surcharges = paperLine(job.Surcharges, "Pelliculage couverture", float64(quantity)*cfg.Fixed.LaminationUnit)
	}
	return job, nil
}

package pricing

const (
	defaultBookPages = 50
	bookBinding      = "Spirale Plastique"
)

var defaultBookCover = CoatedPaper(250, FinishMatte)

// priceBook prices a coil-bound book: black and white interior sheets plus a
// color cover at the configured unit price.
func priceBook(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	pages := opts.pagesOr(defaultBookPages)
	format := opts.formatOr(FormatA4)
	coverSide := opts.sideOr(SideRecto)
	inner := paperOr(opts.InnerPaper, PaperOffset80)
	cover := paperOr(opts.CoverPaper, defaultBookCover)

	// anything but a single sided cover is priced as double sided
	priceSide := SideRectoVerso
	if coverSide == SideRecto {
		priceSide = SideRecto
	}
	unitCover, ok := cfg.BookCovers[format][priceSide]
	if !ok {
		return PricedJob{}, missingTable(ProductBook, "prix_couverture_livre "+string(format)+"/"+string(priceSide))
	}

	innerSheets := InteriorSheets(pages, format, quantity)

	job := PricedJob{
		Base: float64(innerSheets)*cfg.Fixed.MonoSheet + float64(quantity)*unitCover,
		Details: Details{
			Format:        format.Label(),
			Pages:         pages,
			Binding:       bookBinding,
			InnerPaper:    inner.DisplayName(),
			CoverPaper:    cover.DisplayName(),
			CoverPrinting: coverSide.Label(),
			Lamination:    laminationLabel(opts.Lamination),
		},
	}

	job.Surcharges = paperLine(job.Surcharges, "Supplément papier intérieur", inner.Surcharge(innerSheets, cfg.Fixed))
	if opts.Lamination {
		job.Surcharges = paperLine(job.Surcharges, "Pelliculage", float64(quantity)*cfg.Fixed.LaminationUnit)
	}
	return job, nil
}

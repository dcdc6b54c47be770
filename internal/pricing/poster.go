package pricing

// oversizeMarkup applies to the unit price of A3+ posters.
const oversizeMarkup = 1.2

var defaultPosterPaper = CoatedPaper(135, FinishMatte)

// Poster tables hold unit prices, unlike the other simple products.
func pricePoster(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	format := opts.formatOr(FormatA3)
	paper := paperOr(opts.Paper, defaultPosterPaper)

	if cfg.Tariffs.Poster == nil {
		return PricedJob{}, missingTable(ProductPoster, "affiche")
	}

	unit := PriceForQuantity(cfg.Tariffs.Poster, float64(quantity))
	if format == FormatA3Plus {
		unit *= oversizeMarkup
	}

	formatLabel := "A3+ (32x48 cm)"
	if format == FormatA3 {
		formatLabel = "A3 (30x42 cm)"
	}

	job := PricedJob{
		Base: unit * float64(quantity),
		Details: Details{
			Format: formatLabel,
			Paper:  paper.DisplayName(),
		},
	}
	job.Surcharges = paperLine(job.Surcharges, paperSurchargeLabel(paper), paper.Surcharge(quantity, cfg.Fixed))
	return job, nil
}

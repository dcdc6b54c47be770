package pricing

var defaultLeafletPaper = CoatedPaper(115, FinishMatte)

func priceLeaflet(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	paper := paperOr(opts.Paper, defaultLeafletPaper)

	if cfg.Tariffs.Leaflet == nil {
		return PricedJob{}, missingTable(ProductLeaflet, "depliant")
	}

	job := PricedJob{
		Base: PriceForQuantity(cfg.Tariffs.Leaflet, float64(quantity)),
		Details: Details{
			Format: "3 Volets (A4 Ouvert)",
			Paper:  paper.DisplayName(),
		},
	}
	job.Surcharges = paperLine(job.Surcharges, paperSurchargeLabel(paper), paper.Surcharge(quantity, cfg.Fixed))
	return job, nil
}

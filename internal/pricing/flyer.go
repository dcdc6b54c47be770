package pricing

var defaultFlyerPaper = CoatedPaper(90, FinishMatte)

func priceFlyer(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	side := opts.sideOr(SideRecto)
	paper := paperOr(opts.Paper, defaultFlyerPaper)

	tiers := cfg.Tariffs.Flyer[side]
	if tiers == nil {
		return PricedJob{}, missingTable(ProductFlyer, "flyer "+string(side))
	}

	job := PricedJob{
		Base: PriceForQuantity(tiers, float64(quantity)),
		Details: Details{
			Printing: side.Label(),
			Paper:    paper.DisplayName(),
			Format:   "Standard",
		},
	}
	job.Surcharges = paperLine(job.Surcharges, paperSurchargeLabel(paper), paper.Surcharge(quantity, cfg.Fixed))
	return job, nil
}

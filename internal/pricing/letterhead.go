package pricing

func priceLetterhead(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	paper := paperOr(opts.Paper, PaperOffset80)

	if cfg.Tariffs.Letterhead == nil {
		return PricedJob{}, missingTable(ProductLetterhead, "entete")
	}

	job := PricedJob{
		Base: PriceForQuantity(cfg.Tariffs.Letterhead, float64(quantity)),
		Details: Details{
			Format: "A4",
			Paper:  paper.DisplayName(),
		},
	}
	job.Surcharges = paperLine(job.Surcharges, paperSurchargeLabel(paper), paper.Surcharge(quantity, cfg.Fixed))
	return job, nil
}

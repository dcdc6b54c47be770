package pricing

// cards are cut from sheets of ten, so paper is charged per batch
const cardsPerSheet = 10

var defaultCardPaper = CoatedPaper(300, FinishMatte)

func priceCard(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	finish := opts.Finish
	if finish == "" {
		finish = FinishPlain
	}
	paper := paperOr(opts.Paper, defaultCardPaper)

	tiers := cfg.Tariffs.Card[finish]
	if tiers == nil {
		return PricedJob{}, missingTable(ProductCard, "carte "+string(finish))
	}

	finishLabel := "Pelliculée"
	if finish == FinishPlain {
		finishLabel = "Standard"
	}

	sheets := (quantity + cardsPerSheet - 1) / cardsPerSheet
	job := PricedJob{
		Base: PriceForQuantity(tiers, float64(quantity)),
		Details: Details{
			Finish: finishLabel,
			Paper:  paper.DisplayName(),
		},
	}
	job.Surcharges = paperLine(job.Surcharges, paperSurchargeLabel(paper), paper.Surcharge(sheets, cfg.Fixed))
	return job, nil
}

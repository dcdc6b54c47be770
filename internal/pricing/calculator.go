package pricing

// PricedJob is what a product calculator hands back to the engine before
// the minimum price and design service are applied.
type PricedJob struct {
	Base       float64
	Surcharges []LineItem
	Details    Details
}

// Calculator prices one product family.
type Calculator interface {
	Price(cfg *Configuration, opts Options, quantity int) (PricedJob, error)
}

// CalculatorFunc adapts a function to Calculator.
type CalculatorFunc func(cfg *Configuration, opts Options, quantity int) (PricedJob, error)

func (f CalculatorFunc) Price(cfg *Configuration, opts Options, quantity int) (PricedJob, error) {
	return f(cfg, opts, quantity)
}

func defaultCalculators() map[ProductType]Calculator {
	return map[ProductType]Calculator{
		ProductFlyer:      CalculatorFunc(priceFlyer),
		ProductCard:       CalculatorFunc(priceCard),
		ProductLeaflet:    CalculatorFunc(priceLeaflet),
		ProductLetterhead: CalculatorFunc(priceLetterhead),
		ProductBrochure:   CalculatorFunc(priceBrochure),
		ProductBook:       CalculatorFunc(priceBook),
		ProductPoster:     CalculatorFunc(pricePoster),
	}
}

// paperLine appends the paper surcharge line when it is non-zero.
func paperLine(items []LineItem, label string, amount float64) []LineItem {
	if amount > 0 {
		items = append(items, LineItem{Label: label, Amount: amount})
	}
	return items
}

func paperSurchargeLabel(p Paper) string {
	return "Supplément papier " + p.DisplayName()
}

func laminationLabel(on bool) string {
	if on {
		return "Oui"
	}
	return "Non"
}

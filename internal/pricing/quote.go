package pricing

// LineItem is a labelled amount added on top of the base price.
type LineItem struct {
	Label  string  `json:"label" bson:"label"`
	Amount float64 `json:"amount" bson:"amount"`
}

// Details describes the resolved configuration in the wording of the quote.
type Details struct {
	Printing      string `json:"printing,omitempty" bson:"printing,omitempty"`
	Finish        string `json:"finish,omitempty" bson:"finish,omitempty"`
	Format        string `json:"format,omitempty" bson:"format,omitempty"`
	Pages         int    `json:"pages,omitempty" bson:"pages,omitempty"`
	Binding       string `json:"binding,omitempty" bson:"binding,omitempty"`
	Paper         string `json:"paper,omitempty" bson:"paper,omitempty"`
	InnerPaper    string `json:"inner_paper,omitempty" bson:"inner_paper,omitempty"`
	CoverPaper    string `json:"cover_paper,omitempty" bson:"cover_paper,omitempty"`
	CoverPrinting string `json:"cover_printing,omitempty" bson:"cover_printing,omitempty"`
	Lamination    string `json:"lamination,omitempty" bson:"lamination,omitempty"`
}

// DesignDetails records how a design service was priced.
type DesignDetails struct {
	Service     DesignKind `json:"service" bson:"service"`
	Hours       float64    `json:"hours" bson:"hours"`
	Rate        float64    `json:"rate" bson:"rate"`
	Description string     `json:"description" bson:"description"`
}

// Quote is the itemized price of a product request. Adjustments are
// informational: the base price already includes them.
type Quote struct {
	ProductType ProductType    `json:"product_type" bson:"product_type"`
	Quantity    int            `json:"quantity" bson:"quantity"`
	BasePrice   float64        `json:"base_price" bson:"base_price"`
	Surcharges  []LineItem     `json:"surcharges" bson:"surcharges"`
	Adjustments []LineItem     `json:"adjustments,omitempty" bson:"adjustments,omitempty"`
	DesignCost  float64        `json:"design_cost" bson:"design_cost"`
	Design      *DesignDetails `json:"design,omitempty" bson:"design,omitempty"`
	Details     Details        `json:"details" bson:"details"`
	Total       float64        `json:"total" bson:"total"`
}

// Clone returns a copy of q that shares no slices or pointers with it.
func (q Quote) Clone() Quote {
	out := q
	out.Surcharges = cloneLines(q.Surcharges)
	out.Adjustments = cloneLines(q.Adjustments)
	if q.Design != nil {
		design := *q.Design
		out.Design = &design
	}
	return out
}

func cloneLines(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	out := make([]LineItem, len(lines))
	copy(out, lines)
	return out
}

// SurchargeTotal sums the surcharge lines.
func (q Quote) SurchargeTotal() float64 {
	var sum float64
	for _, s := range q.Surcharges {
		sum += s.Amount
	}
	return sum
}

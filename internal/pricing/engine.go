package pricing

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const minimumAdjustmentLabel = "Ajustement prix minimum"

// Engine prices quotes against one configuration. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	cfg         Configuration
	fingerprint string
	calculators map[ProductType]Calculator
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCalculator registers or replaces the calculator of a product family.
func WithCalculator(product ProductType, c Calculator) EngineOption {
	return func(e *Engine) {
		e.calculators[product] = c
	}
}

// NewEngine creates an engine for cfg. The configuration is normalized on a
// copy; the caller's value is left untouched.
func NewEngine(cfg Configuration, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:         cfg.clone(),
		calculators: defaultCalculators(),
	}
	e.cfg.Normalize()
	e.fingerprint = fingerprint(e.cfg)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fingerprint identifies the normalized configuration. Two engines share a
// fingerprint only when they price with equal rates.
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}

// Fingerprint returns the fingerprint an engine built from cfg would carry.
func Fingerprint(cfg Configuration) string {
	c := cfg.clone()
	c.Normalize()
	return fingerprint(c)
}

// fingerprint hashes the Go syntax rendering of cfg. fmt sorts map keys and
// tells nil tables from empty ones.
func fingerprint(cfg Configuration) string {
	d := xxhash.New()
	_, _ = fmt.Fprintf(d, "%#v", cfg)
	return strconv.FormatUint(d.Sum64(), 16)
}

// Configuration returns a copy of the configuration the engine prices with.
func (e *Engine) Configuration() Configuration {
	return e.cfg.clone()
}

// Supports reports whether a calculator is registered for product.
func (e *Engine) Supports(product ProductType) bool {
	_, ok := e.calculators[product]
	return ok
}

// Calculate prices quantity units of product. It returns either a complete
// quote or a *Failure, never both.
func (e *Engine) Calculate(product ProductType, opts Options, quantity int, design *DesignRequest) (quote *Quote, err error) {
	if quantity <= 0 {
		return nil, fail(ErrInvalidQuantity, product, "quantity must be positive, got %d", quantity)
	}

	calc, ok := e.calculators[product]
	if !ok {
		return nil, fail(ErrUnknownProduct, product, "%q", string(product))
	}

	defer func() {
		if r := recover(); r != nil {
			quote = nil
			err = &Failure{Kind: ErrCalculation, Product: product, Message: fmt.Sprint(r)}
		}
	}()

	job, err := calc.Price(&e.cfg, opts, quantity)
	if err != nil {
		return nil, asFailure(product, err)
	}

	q := &Quote{
		ProductType: product,
		Quantity:    quantity,
		BasePrice:   job.Base,
		Surcharges:  job.Surcharges,
		Details:     job.Details,
	}
	if q.Surcharges == nil {
		q.Surcharges = []LineItem{}
	}

	if minimum := e.cfg.Fixed.MinimumPrice; q.BasePrice < minimum {
		q.Adjustments = append(q.Adjustments, LineItem{
			Label:  minimumAdjustmentLabel,
			Amount: minimum - q.BasePrice,
		})
		q.BasePrice = minimum
	}

	if design != nil && design.Kind != DesignNone {
		cost, details, err := DesignCost(product, design.Kind, opts)
		if err != nil {
			return nil, asFailure(product, err)
		}
		q.DesignCost = cost
		q.Design = details
	}

	q.Total = roundCents(q.BasePrice + q.SurchargeTotal() + q.DesignCost)
	return q, nil
}

// asFailure keeps typed failures and wraps anything else as a calculation error.
func asFailure(product ProductType, err error) *Failure {
	if f, ok := err.(*Failure); ok {
		return f
	}
	return &Failure{Kind: ErrCalculation, Product: product, Message: err.Error(), Err: err}
}

func (c Configuration) clone() Configuration {
	out := Configuration{
		Tariffs: Tariffs{
			Leaflet:    cloneTiers(c.Tariffs.Leaflet),
			Letterhead: cloneTiers(c.Tariffs.Letterhead),
			Poster:     cloneTiers(c.Tariffs.Poster),
		},
		Fixed: c.Fixed,
	}
	if c.Tariffs.Flyer != nil {
		out.Tariffs.Flyer = make(map[Side][]RateTier, len(c.Tariffs.Flyer))
		for k, v := range c.Tariffs.Flyer {
			out.Tariffs.Flyer[k] = cloneTiers(v)
		}
	}
	if c.Tariffs.Card != nil {
		out.Tariffs.Card = make(map[CardFinish][]RateTier, len(c.Tariffs.Card))
		for k, v := range c.Tariffs.Card {
			out.Tariffs.Card[k] = cloneTiers(v)
		}
	}
	if c.BookCovers != nil {
		out.BookCovers = make(CoverPrices, len(c.BookCovers))
		for format, sides := range c.BookCovers {
			m := make(map[Side]float64, len(sides))
			for side, price := range sides {
				m[side] = price
			}
			out.BookCovers[format] = m
		}
	}
	if c.BrochureTiers != nil {
		out.BrochureTiers = make(map[string][]RateTier, len(c.BrochureTiers))
		for k, v := range c.BrochureTiers {
			out.BrochureTiers[k] = cloneTiers(v)
		}
	}
	return out
}

func cloneTiers(t []RateTier) []RateTier {
	if t == nil {
		return nil
	}
	out := make([]RateTier, len(t))
	copy(out, t)
	return out
}

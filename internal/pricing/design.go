package pricing

import (
	"fmt"
	"strings"
)

// DesignKind is the graphic design (PAO) service requested with a quote.
type DesignKind string

const (
	DesignNone       DesignKind = "none"
	DesignCreation   DesignKind = "conception"
	DesignLayout     DesignKind = "layout"
	DesignCorrection DesignKind = "correction"
)

// ParseDesignKind normalizes a design service name. Empty input means none.
func ParseDesignKind(s string) DesignKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "aucun":
		return DesignNone
	case "conception", "creation":
		return DesignCreation
	case "layout", "mise-en-page":
		return DesignLayout
	case "correction":
		return DesignCorrection
	}
	return DesignKind(s)
}

// DesignRequest asks for design work on top of the print job.
type DesignRequest struct {
	Kind DesignKind `json:"type"`
}

// laborProfile holds the hours of each service for one product. For
// per-page products creation stays flat and the other hours are per page.
type laborProfile struct {
	creation   float64
	correction float64
	layout     float64
	perPage    bool
	// per-page hours for A5 jobs, when they differ
	a5Correction float64
	a5Layout     float64
}

var laborProfiles = map[ProductType]laborProfile{
	ProductFlyer:      {creation: 4, correction: 2, layout: 2},
	ProductCard:       {creation: 1, correction: 0.5, layout: 0.5},
	ProductLeaflet:    {creation: 8, correction: 3, layout: 3},
	ProductLetterhead: {creation: 4, correction: 2, layout: 2},
	ProductPoster:     {creation: 7, correction: 1, layout: 1},
	ProductBrochure:   {creation: 8, correction: 0.17, layout: 0.34, perPage: true, a5Correction: 0.119, a5Layout: 0.238},
	ProductBook:       {creation: 12, correction: 0.17, layout: 0.25, perPage: true, a5Correction: 0.119, a5Layout: 0.175},
}

// DesignRates are the hourly rates of each design service.
var DesignRates = map[DesignKind]float64{
	DesignCreation:   55,
	DesignLayout:     40,
	DesignCorrection: 40,
}

var designLabels = map[DesignKind]string{
	DesignCreation:   "Création complète",
	DesignLayout:     "Mise en page",
	DesignCorrection: "Correction simple",
}

// defaultPages is the page count a per-page product prices with when the
// request leaves it out.
var defaultPages = map[ProductType]int{
	ProductBrochure: defaultBrochurePages,
	ProductBook:     defaultBookPages,
}

// DesignCost prices a design service for a product. Products without a
// labor profile, and requests for no service, cost nothing.
func DesignCost(product ProductType, kind DesignKind, opts Options) (float64, *DesignDetails, error) {
	profile, ok := laborProfiles[product]
	if !ok || kind == DesignNone || kind == "" {
		return 0, nil, nil
	}

	rate, ok := DesignRates[kind]
	if !ok {
		return 0, nil, fail(ErrCalculation, product, "unknown design service %q", kind)
	}

	var hours float64
	switch {
	case !profile.perPage:
		hours = profile.hours(kind)
	case kind == DesignCreation:
		hours = profile.creation
	default:
		unit := profile.hours(kind)
		if opts.formatOr(FormatA4) == FormatA5 {
			unit = profile.a5Hours(kind)
		}
		hours = unit * float64(opts.pagesOr(defaultPages[product]))
	}

	return hours * rate, &DesignDetails{
		Service:     kind,
		Hours:       roundCents(hours),
		Rate:        rate,
		Description: fmt.Sprintf("%s (%.2fh)", designLabels[kind], hours),
	}, nil
}

func (p laborProfile) hours(kind DesignKind) float64 {
	switch kind {
	case DesignCreation:
		return p.creation
	case DesignLayout:
		return p.layout
	}
	return p.correction
}

func (p laborProfile) a5Hours(kind DesignKind) float64 {
	if kind == DesignLayout {
		return p.a5Layout
	}
	return p.a5Correction
}

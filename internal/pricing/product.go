package pricing

import "strings"

// ProductType identifies a product family the engine can price.
type ProductType string

const (
	ProductFlyer      ProductType = "flyer"
	ProductCard       ProductType = "carte"
	ProductLeaflet    ProductType = "depliant"
	ProductLetterhead ProductType = "entete"
	ProductBrochure   ProductType = "brochure"
	ProductBook       ProductType = "livre"
	ProductPoster     ProductType = "affiches"
)

// ProductTypes lists every product family in catalogue order.
var ProductTypes = []ProductType{
	ProductFlyer,
	ProductCard,
	ProductLeaflet,
	ProductLetterhead,
	ProductBrochure,
	ProductBook,
	ProductPoster,
}

var productAliases = map[string]ProductType{
	"flyer":      ProductFlyer,
	"flyers":     ProductFlyer,
	"carte":      ProductCard,
	"card":       ProductCard,
	"depliant":   ProductLeaflet,
	"leaflet":    ProductLeaflet,
	"entete":     ProductLetterhead,
	"letterhead": ProductLetterhead,
	"brochure":   ProductBrochure,
	"livre":      ProductBook,
	"book":       ProductBook,
	"affiches":   ProductPoster,
	"affiche":    ProductPoster,
	"poster":     ProductPoster,
}

// ParseProductType resolves a product identifier, accepting the shop codes
// and their English aliases. Unknown identifiers are returned as-is so the
// engine can report them.
func ParseProductType(s string) ProductType {
	if p, ok := productAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return ProductType(s)
}

// Side is a print side: single sided or both sides.
type Side string

const (
	SideRecto      Side = "recto"
	SideRectoVerso Side = "rectoVerso"
)

// ParseSide normalizes a print side. Empty input stays empty so calculators
// can apply their own default.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "recto", "simplex":
		return SideRecto
	case "rectoverso", "recto-verso", "recto_verso", "duplex":
		return SideRectoVerso
	}
	return Side(s)
}

// Label returns the wording printed on quotes.
func (s Side) Label() string {
	if s == SideRecto {
		return "Recto"
	}
	return "Recto/Verso"
}

// CardFinish selects the business card rate table.
type CardFinish string

const (
	FinishPlain     CardFinish = "recto"
	FinishLaminated CardFinish = "pellicule"
)

// ParseCardFinish normalizes a card finish.
func ParseCardFinish(s string) CardFinish {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "recto", "standard", "plain":
		return FinishPlain
	case "pellicule", "laminated":
		return FinishLaminated
	}
	return CardFinish(s)
}

// Format is a page or sheet format code.
type Format string

const (
	FormatA4     Format = "a4"
	FormatA5     Format = "a5"
	FormatA3     Format = "a3"
	FormatA3Plus Format = "a3plus"
)

// ParseFormat normalizes a format code.
func ParseFormat(s string) Format {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "a3+", "a3-plus":
		return FormatA3Plus
	default:
		return Format(v)
	}
}

// Label is the upper-case form used in quote details.
func (f Format) Label() string {
	if f == FormatA3Plus {
		return "A3+"
	}
	return strings.ToUpper(string(f))
}

// Options carries the resolved, product-specific choices of a quote request.
// Zero values select the product default.
type Options struct {
	Side       Side
	Finish     CardFinish
	Format     Format
	Pages      int
	Lamination bool
	Paper      *Paper
	InnerPaper *Paper
	CoverPaper *Paper
	Binding    string
}

// RawOptions is the loosely typed wire form of Options.
type RawOptions struct {
	Mode        string `json:"mode,omitempty"`
	Finish      string `json:"finish,omitempty"`
	Format      string `json:"format,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	CoverType   string `json:"coverType,omitempty"`
	Pelliculage string `json:"pelliculage,omitempty"`
	Paper       string `json:"paper,omitempty"`
	PaperInt    string `json:"paperInt,omitempty"`
	PaperCov    string `json:"paperCov,omitempty"`
	Finition    string `json:"finition,omitempty"`
}

// Resolve parses raw option strings once, including paper codes.
func (r RawOptions) Resolve() Options {
	opts := Options{
		Format:     ParseFormat(r.Format),
		Finish:     ParseCardFinish(r.Finish),
		Pages:      r.Pages,
		Lamination: parseLamination(r.Pelliculage),
		Binding:    strings.TrimSpace(r.Finition),
		Paper:      parseOptionalPaper(r.Paper),
		InnerPaper: parseOptionalPaper(r.PaperInt),
		CoverPaper: parseOptionalPaper(r.PaperCov),
	}

	// flyers use "mode", bound products use "coverType" for the same choice
	opts.Side = ParseSide(r.Mode)
	if opts.Side == "" {
		opts.Side = ParseSide(r.CoverType)
	}
	return opts
}

func parseLamination(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avec", "oui", "yes", "true", "with":
		return true
	}
	return false
}

func parseOptionalPaper(code string) *Paper {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	p := ParsePaper(code)
	return &p
}

func (o Options) sideOr(def Side) Side {
	if o.Side == "" {
		return def
	}
	return o.Side
}

func (o Options) formatOr(def Format) Format {
	if o.Format == "" {
		return def
	}
	return o.Format
}

func (o Options) pagesOr(def int) int {
	if o.Pages <= 0 {
		return def
	}
	return o.Pages
}

func paperOr(p *Paper, def Paper) Paper {
	if p == nil {
		return def
	}
	return *p
}

package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// FixedCosts are the flat constants shared by every calculator.
type FixedCosts struct {
	LaminationUnit float64 `json:"pelliculage" bson:"pelliculage"`
	MonoSheet      float64 `json:"feuille_nb" bson:"feuille_nb"`
	Offset100Rate  float64 `json:"offset_100" bson:"offset_100"`
	CoatedGramRate float64 `json:"gramme_couche" bson:"gramme_couche"`
	MinimumPrice   float64 `json:"min_price" bson:"min_price"`
}

// DefaultFixedCosts are used for any fixed cost the document leaves out.
var DefaultFixedCosts = FixedCosts{
	LaminationUnit: 0.1,
	MonoSheet:      0.2,
	Offset100Rate:  0.014,
	CoatedGramRate: 0.0007,
	MinimumPrice:   28,
}

// Tariffs holds the tier tables of the simple product families.
// A nil table means the document does not carry it.
type Tariffs struct {
	Flyer      map[Side][]RateTier       `json:"flyer" bson:"flyer"`
	Card       map[CardFinish][]RateTier `json:"carte" bson:"carte"`
	Leaflet    []RateTier                `json:"depliant" bson:"depliant"`
	Letterhead []RateTier                `json:"entete" bson:"entete"`
	Poster     []RateTier                `json:"affiche" bson:"affiche"`
}

// CoverPrices maps a book format and print side to a unit cover price.
type CoverPrices map[Format]map[Side]float64

// Configuration is the rate document the engine prices against. It is
// treated as immutable once handed to an Engine.
type Configuration struct {
	Tariffs       Tariffs               `json:"tarifs" bson:"tarifs"`
	BookCovers    CoverPrices           `json:"prix_couverture_livre" bson:"prix_couverture_livre"`
	BrochureTiers map[string][]RateTier `json:"paliers_brochure,omitempty" bson:"paliers_brochure,omitempty"`
	Fixed         FixedCosts            `json:"prix_fixes" bson:"prix_fixes"`
}

// DefaultBookCovers returns the stock book cover prices.
func DefaultBookCovers() CoverPrices {
	return CoverPrices{
		FormatA4: {SideRecto: 1.3, SideRectoVerso: 1.5},
		FormatA5: {SideRecto: 0.65, SideRectoVerso: 0.75},
	}
}

// DefaultConfiguration is the degraded document used when no rate document
// can be loaded: empty tier tables, stock cover prices and fixed costs.
func DefaultConfiguration() Configuration {
	return Configuration{
		Tariffs: Tariffs{
			Flyer:      map[Side][]RateTier{SideRecto: {}, SideRectoVerso: {}},
			Card:       map[CardFinish][]RateTier{FinishPlain: {}, FinishLaminated: {}},
			Leaflet:    []RateTier{},
			Letterhead: []RateTier{},
			Poster:     []RateTier{},
		},
		BookCovers:    DefaultBookCovers(),
		BrochureTiers: map[string][]RateTier{"couleur_recto_verso": {}},
		Fixed:         DefaultFixedCosts,
	}
}

// ParseConfiguration decodes a JSON rate document and normalizes it. Only a
// document that is not a JSON object is an error: an unreadable table is
// left out and reported with the repairs, so the other products still price.
func ParseConfiguration(data []byte) (Configuration, []string, error) {
	var raw struct {
		Tariffs       json.RawMessage `json:"tarifs"`
		BookCovers    json.RawMessage `json:"prix_couverture_livre"`
		BrochureTiers json.RawMessage `json:"paliers_brochure"`
		Fixed         json.RawMessage `json:"prix_fixes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Configuration{}, nil, fmt.Errorf("decode rate document: %w", err)
	}

	var cfg Configuration
	var repairs []string

	tables, _ := decodePart[map[string]json.RawMessage]("tarifs", raw.Tariffs, &repairs)
	for _, name := range sortedKeys(tables) {
		path := "tarifs." + name
		switch name {
		case "flyer":
			cfg.Tariffs.Flyer = decodeTableSet[Side](path, tables[name], &repairs)
		case "carte":
			cfg.Tariffs.Card = decodeTableSet[CardFinish](path, tables[name], &repairs)
		case "depliant":
			cfg.Tariffs.Leaflet, _ = decodePart[[]RateTier](path, tables[name], &repairs)
		case "entete":
			cfg.Tariffs.Letterhead, _ = decodePart[[]RateTier](path, tables[name], &repairs)
		case "affiche":
			cfg.Tariffs.Poster, _ = decodePart[[]RateTier](path, tables[name], &repairs)
		}
	}

	covers, _ := decodePart[map[Format]json.RawMessage]("prix_couverture_livre", raw.BookCovers, &repairs)
	for _, format := range sortedKeys(covers) {
		sides, ok := decodePart[map[Side]float64]("prix_couverture_livre."+string(format), covers[format], &repairs)
		if !ok {
			continue
		}
		if cfg.BookCovers == nil {
			cfg.BookCovers = CoverPrices{}
		}
		cfg.BookCovers[format] = sides
	}

	cfg.BrochureTiers, _ = decodePart[map[string][]RateTier]("paliers_brochure", raw.BrochureTiers, &repairs)

	fixed, _ := decodePart[map[string]json.RawMessage]("prix_fixes", raw.Fixed, &repairs)
	for _, f := range cfg.Fixed.fields() {
		if v, ok := decodePart[float64]("prix_fixes."+f.name, fixed[f.name], &repairs); ok {
			*f.v = v
		}
	}

	repairs = append(repairs, cfg.Normalize()...)
	return cfg, repairs, nil
}

// decodePart decodes one part of a rate document. An absent or null part
// reports false without a repair; an unreadable one is reported and left zero.
func decodePart[T any](path string, data json.RawMessage, repairs *[]string) (T, bool) {
	var out T
	if len(data) == 0 || string(data) == "null" {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		*repairs = append(*repairs, fmt.Sprintf("%s unreadable, ignored: %v", path, err))
		return zero, false
	}
	return out, true
}

// decodeTableSet decodes a table per print mode or finish, dropping only
// the unreadable ones.
func decodeTableSet[K ~string](path string, data json.RawMessage, repairs *[]string) map[K][]RateTier {
	raw, ok := decodePart[map[K]json.RawMessage](path, data, repairs)
	if !ok {
		return nil
	}
	out := make(map[K][]RateTier, len(raw))
	for _, key := range sortedKeys(raw) {
		if tiers, ok := decodePart[[]RateTier](path+"."+string(key), raw[key], repairs); ok {
			out[key] = tiers
		}
	}
	return out
}

type fixedField struct {
	name string
	v    *float64
	def  float64
}

func (f *FixedCosts) fields() []fixedField {
	return []fixedField{
		{"pelliculage", &f.LaminationUnit, DefaultFixedCosts.LaminationUnit},
		{"feuille_nb", &f.MonoSheet, DefaultFixedCosts.MonoSheet},
		{"offset_100", &f.Offset100Rate, DefaultFixedCosts.Offset100Rate},
		{"gramme_couche", &f.CoatedGramRate, DefaultFixedCosts.CoatedGramRate},
		{"min_price", &f.MinimumPrice, DefaultFixedCosts.MinimumPrice},
	}
}

// Normalize defaults missing fixed costs and book cover prices and drops
// unusable tiers. A fixed cost that is zero, negative or not finite counts
// as missing. It returns one message per repair.
func (c *Configuration) Normalize() []string {
	var repairs []string

	for _, f := range c.Fixed.fields() {
		if !usable(*f.v) || *f.v <= 0 {
			*f.v = f.def
			repairs = append(repairs, fmt.Sprintf("prix_fixes.%s defaulted to %g", f.name, f.def))
		}
	}

	if c.BookCovers == nil {
		c.BookCovers = CoverPrices{}
	}
	defaults := DefaultBookCovers()
	for _, format := range sortedKeys(defaults) {
		if c.BookCovers[format] == nil {
			c.BookCovers[format] = map[Side]float64{}
		}
		for _, side := range sortedKeys(defaults[format]) {
			price := defaults[format][side]
			if v, ok := c.BookCovers[format][side]; !ok || !usable(v) {
				c.BookCovers[format][side] = price
				repairs = append(repairs, fmt.Sprintf("prix_couverture_livre.%s.%s defaulted to %g", format, side, price))
			}
		}
	}

	for _, side := range sortedKeys(c.Tariffs.Flyer) {
		c.Tariffs.Flyer[side], repairs = cleanTiers("tarifs.flyer."+string(side), c.Tariffs.Flyer[side], repairs)
	}
	for _, finish := range sortedKeys(c.Tariffs.Card) {
		c.Tariffs.Card[finish], repairs = cleanTiers("tarifs.carte."+string(finish), c.Tariffs.Card[finish], repairs)
	}
	c.Tariffs.Leaflet, repairs = cleanTiers("tarifs.depliant", c.Tariffs.Leaflet, repairs)
	c.Tariffs.Letterhead, repairs = cleanTiers("tarifs.entete", c.Tariffs.Letterhead, repairs)
	c.Tariffs.Poster, repairs = cleanTiers("tarifs.affiche", c.Tariffs.Poster, repairs)

	return repairs
}

// Validate reports whether every product family has the table it needs.
// A configuration that fails validation still prices the families it covers.
func (c Configuration) Validate() error {
	var missing []string
	if c.Tariffs.Flyer[SideRecto] == nil || c.Tariffs.Flyer[SideRectoVerso] == nil {
		missing = append(missing, "tarifs.flyer")
	}
	if c.Tariffs.Card[FinishPlain] == nil || c.Tariffs.Card[FinishLaminated] == nil {
		missing = append(missing, "tarifs.carte")
	}
	if c.Tariffs.Leaflet == nil {
		missing = append(missing, "tarifs.depliant")
	}
	if c.Tariffs.Letterhead == nil {
		missing = append(missing, "tarifs.entete")
	}
	if c.Tariffs.Poster == nil {
		missing = append(missing, "tarifs.affiche")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingRateTable, missing)
	}
	return nil
}

// cleanTiers keeps nil tables nil, so an absent table stays distinguishable
// from an empty one.
func cleanTiers(name string, tiers []RateTier, repairs []string) ([]RateTier, []string) {
	if tiers == nil {
		return nil, repairs
	}
	out := make([]RateTier, 0, len(tiers))
	for _, t := range tiers {
		if !usable(t.Qty) || !usable(t.Price) || t.Qty < 0 || t.Price < 0 {
			repairs = append(repairs, fmt.Sprintf("%s: dropped tier %g/%g", name, t.Qty, t.Price))
			continue
		}
		out = append(out, t)
	}
	return out, repairs
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

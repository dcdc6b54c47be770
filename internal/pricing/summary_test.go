package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRenderSummary tests the configuration text of each product family.
func TestRenderSummary(t *testing.T) {
	engine := NewEngine(testConfiguration())

	tests := []struct {
		name     string
		product  ProductType
		opts     Options
		design   *DesignRequest
		expected string
	}{
		{
			name:     "flyer",
			product:  ProductFlyer,
			opts:     Options{Side: SideRectoVerso},
			expected: "Format Standard\nImpression: Recto/Verso\nPapier: Couché 90gr Mat",
		},
		{
			name:     "card",
			product:  ProductCard,
			expected: "Finition: Standard\nPapier: Couché 300gr Mat",
		},
		{
			name:     "leaflet",
			product:  ProductLeaflet,
			expected: "3 Volets (A4 Ouvert)\nPapier: Couché 115gr Mat",
		},
		{
			name:     "letterhead",
			product:  ProductLetterhead,
			expected: "Format A4\nPapier: Offset 80gr Standard",
		},
		{
			name:     "poster",
			product:  ProductPoster,
			opts:     Options{Format: FormatA3Plus},
			expected: "Grand Format A3+ (32x48 cm)\nPapier: Couché 135gr Mat",
		},
		{
			name:    "brochure with design",
			product: ProductBrochure,
			opts:    Options{Pages: 16, Lamination: true},
			design:  &DesignRequest{Kind: DesignCreation},
			expected: "Format: A4 - 16 Pages\nFinition: Piquée à cheval\n\n" +
				"Papier Intérieur: Couché 90gr Mat\nPapier Couverture: Couché 250gr Mat\n" +
				">>> Impression Couv: Recto\n>>> Finition Couv: AVEC Pelliculage\n\n" +
				"[OPTION GRAPHIQUE]: Création complète (8.00h)",
		},
		{
			name:    "book",
			product: ProductBook,
			opts:    Options{Format: FormatA5, Pages: 120},
			expected: "Format: A5 - 120 Pages\nReliure: Spirale Plastique\n\n" +
				"Papier Intérieur: Offset 80gr Standard\nPapier Couverture: Couché 250gr Mat\n" +
				">>> Impression Couv: Recto\n>>> Finition Couv: SANS Pelliculage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Calculate(tt.product, tt.opts, 100, tt.design)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, RenderSummary(quote))
			assert.Equal(t, tt.expected, engine.Summary(tt.product, tt.opts, 100, tt.design))
		})
	}
}

// TestSummary_Unavailable tests the marker for failed quotes.
func TestSummary_Unavailable(t *testing.T) {
	engine := NewEngine(testConfiguration())

	assert.Equal(t, SummaryUnavailable, engine.Summary(ProductFlyer, Options{}, 0, nil))
	assert.Equal(t, SummaryUnavailable, engine.Summary("mug", Options{}, 10, nil))
	assert.Equal(t, SummaryUnavailable, RenderSummary(nil))
}

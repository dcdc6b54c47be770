package pricing

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateDocument = `{
  "tarifs": {
    "flyer": {
      "recto": [{"qty": 100, "price": 40}, {"qty": 500, "price": 70}],
      "rectoVerso": [{"qty": 100, "price": 60}, {"qty": -1, "price": 10}]
    },
    "carte": {"recto": [], "pellicule": []},
    "depliant": [],
    "entete": [{"qty": 100, "price": 35}],
    "affiche": [{"qty": 1, "price": 12}]
  },
  "prix_couverture_livre": {"a4": {"recto": 1.4}},
  "prix_fixes": {"min_price": 30, "feuille_nb": 0.25}
}`

// TestParseConfiguration tests decoding and normalizing a rate document.
func TestParseConfiguration(t *testing.T) {
	cfg, repairs, err := ParseConfiguration([]byte(rateDocument))
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Fixed.MinimumPrice)
	assert.Equal(t, 0.25, cfg.Fixed.MonoSheet)
	assert.Equal(t, DefaultFixedCosts.LaminationUnit, cfg.Fixed.LaminationUnit)
	assert.Equal(t, DefaultFixedCosts.Offset100Rate, cfg.Fixed.Offset100Rate)
	assert.Equal(t, DefaultFixedCosts.CoatedGramRate, cfg.Fixed.CoatedGramRate)

	assert.Equal(t, 1.4, cfg.BookCovers[FormatA4][SideRecto])
	assert.Equal(t, 1.5, cfg.BookCovers[FormatA4][SideRectoVerso])
	assert.Equal(t, 0.65, cfg.BookCovers[FormatA5][SideRecto])

	assert.Len(t, cfg.Tariffs.Flyer[SideRecto], 2)
	assert.Equal(t, []RateTier{{Qty: 100, Price: 60}}, cfg.Tariffs.Flyer[SideRectoVerso])
	assert.NotNil(t, cfg.Tariffs.Leaflet)
	assert.Empty(t, cfg.Tariffs.Leaflet)

	assert.Contains(t, repairs, "prix_fixes.pelliculage defaulted to 0.1")
	assert.Contains(t, repairs, "tarifs.flyer.rectoVerso: dropped tier -1/10")
	assert.NoError(t, cfg.Validate())
}

// TestParseConfiguration_Malformed tests that only a non-object document is rejected.
func TestParseConfiguration_Malformed(t *testing.T) {
	_, _, err := ParseConfiguration([]byte(`{"tarifs": [`))
	assert.Error(t, err)

	_, _, err = ParseConfiguration([]byte(`["tarifs"]`))
	assert.Error(t, err)
}

// TestParseConfiguration_UnreadableTables tests that a broken table is dropped
// and reported while the rest of the document loads.
func TestParseConfiguration_UnreadableTables(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantRepair string
		check      func(t *testing.T, cfg Configuration)
	}{
		{
			name:       "flyer table is not an object",
			doc:        `{"tarifs":{"flyer":[1,2],"depliant":[{"qty":100,"price":40}]}}`,
			wantRepair: "tarifs.flyer unreadable",
			check: func(t *testing.T, cfg Configuration) {
				assert.Nil(t, cfg.Tariffs.Flyer)
				assert.Equal(t, []RateTier{{Qty: 100, Price: 40}}, cfg.Tariffs.Leaflet)
			},
		},
		{
			name:       "leaflet table is a string",
			doc:        `{"tarifs":{"depliant":"cheap","entete":[{"qty":100,"price":35}]}}`,
			wantRepair: "tarifs.depliant unreadable",
			check: func(t *testing.T, cfg Configuration) {
				assert.Nil(t, cfg.Tariffs.Leaflet)
				assert.Len(t, cfg.Tariffs.Letterhead, 1)
			},
		},
		{
			name:       "one print side is broken",
			doc:        `{"tarifs":{"flyer":{"recto":[{"qty":100,"price":40}],"rectoVerso":{"qty":1}}}}`,
			wantRepair: "tarifs.flyer.rectoVerso unreadable",
			check: func(t *testing.T, cfg Configuration) {
				assert.Len(t, cfg.Tariffs.Flyer[SideRecto], 1)
				assert.NotContains(t, cfg.Tariffs.Flyer, SideRectoVerso)
			},
		},
		{
			name:       "one book format is broken",
			doc:        `{"prix_couverture_livre":{"a4":"free","a5":{"recto":0.5}}}`,
			wantRepair: "prix_couverture_livre.a4 unreadable",
			check: func(t *testing.T, cfg Configuration) {
				assert.Equal(t, 1.3, cfg.BookCovers[FormatA4][SideRecto])
				assert.Equal(t, 0.5, cfg.BookCovers[FormatA5][SideRecto])
			},
		},
		{
			name:       "one fixed cost is a string",
			doc:        `{"prix_fixes":{"min_price":"thirty","feuille_nb":0.3}}`,
			wantRepair: "prix_fixes.min_price unreadable",
			check: func(t *testing.T, cfg Configuration) {
				assert.Equal(t, DefaultFixedCosts.MinimumPrice, cfg.Fixed.MinimumPrice)
				assert.Equal(t, 0.3, cfg.Fixed.MonoSheet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, repairs, err := ParseConfiguration([]byte(tt.doc))
			require.NoError(t, err)

			found := false
			for _, r := range repairs {
				if strings.HasPrefix(r, tt.wantRepair) {
					found = true
				}
			}
			assert.True(t, found, "repairs %v lack %q", repairs, tt.wantRepair)
			tt.check(t, cfg)
		})
	}
}

// TestConfiguration_NormalizeFixedCosts tests that non-positive fixed costs take their default.
func TestConfiguration_NormalizeFixedCosts(t *testing.T) {
	for _, minimum := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		cfg := DefaultConfiguration()
		cfg.Fixed.MinimumPrice = minimum

		repairs := cfg.Normalize()

		assert.Equal(t, 28.0, cfg.Fixed.MinimumPrice)
		assert.Equal(t, []string{"prix_fixes.min_price defaulted to 28"}, repairs)
	}
}

// TestConfiguration_NormalizeRepairOrder tests that repairs come out in a stable order.
func TestConfiguration_NormalizeRepairOrder(t *testing.T) {
	want := []string{
		"prix_couverture_livre.a4.recto defaulted to 1.3",
		"prix_couverture_livre.a4.rectoVerso defaulted to 1.5",
		"prix_couverture_livre.a5.recto defaulted to 0.65",
		"prix_couverture_livre.a5.rectoVerso defaulted to 0.75",
	}

	for i := 0; i < 20; i++ {
		cfg := Configuration{Fixed: DefaultFixedCosts}
		require.Equal(t, want, cfg.Normalize())
	}
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseProductType tests shop codes and aliases.
func TestParseProductType(t *testing.T) {
	tests := map[string]ProductType{
		"flyer":      ProductFlyer,
		"carte":      ProductCard,
		"card":       ProductCard,
		"Depliant":   ProductLeaflet,
		"letterhead": ProductLetterhead,
		"entete":     ProductLetterhead,
		"brochure":   ProductBrochure,
		"livre":      ProductBook,
		"book":       ProductBook,
		"affiches":   ProductPoster,
		" poster ":   ProductPoster,
		"mug":        ProductType("mug"),
	}

	for in, expected := range tests {
		assert.Equal(t, expected, ParseProductType(in), in)
	}
}

// TestRawOptions_Resolve tests the wire form of product options.
func TestRawOptions_Resolve(t *testing.T) {
	raw := RawOptions{
		CoverType:   "rectoVerso",
		Format:      "A5",
		Pages:       32,
		Pelliculage: "avec",
		PaperInt:    "offset-100",
		PaperCov:    "couche-300-brillant",
	}

	opts := raw.Resolve()
	assert.Equal(t, SideRectoVerso, opts.Side)
	assert.Equal(t, FormatA5, opts.Format)
	assert.Equal(t, 32, opts.Pages)
	assert.True(t, opts.Lamination)
	assert.Nil(t, opts.Paper)
	require.NotNil(t, opts.InnerPaper)
	assert.Equal(t, PaperOffset100, *opts.InnerPaper)
	require.NotNil(t, opts.CoverPaper)
	assert.Equal(t, 300, opts.CoverPaper.Grammage)
	assert.Equal(t, FinishGloss, opts.CoverPaper.Finish)

	flyer := RawOptions{Mode: "recto", Finish: "pellicule", Format: "a3+"}.Resolve()
	assert.Equal(t, SideRecto, flyer.Side)
	assert.Equal(t, FinishLaminated, flyer.Finish)
	assert.Equal(t, FormatA3Plus, flyer.Format)
	assert.False(t, flyer.Lamination)

	assert.Equal(t, Options{}, RawOptions{}.Resolve())
}

// TestFormatPrice tests currency rendering.
func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "12.50 DT", FormatPrice(12.5))
	assert.Equal(t, "0.00 DT", FormatPrice(0))
	assert.Equal(t, "1234.57 DT", FormatPrice(1234.567))
	assert.Equal(t, "72.96", Amount(72.96).StringFixed(2))
}

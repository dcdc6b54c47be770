package dto

import (
	"testing"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CalculateQuoteRequest
		expectedError error
	}{
		{
			name:    "valid request",
			request: CalculateQuoteRequest{Product: "flyer", Quantity: 100},
		},
		{
			name:          "missing product",
			request:       CalculateQuoteRequest{Quantity: 100},
			expectedError: ErrMissingProduct,
		},
		{
			name:          "blank product",
			request:       CalculateQuoteRequest{Product: "  ", Quantity: 100},
			expectedError: ErrMissingProduct,
		},
		{
			name:    "zero quantity is left to the engine",
			request: CalculateQuoteRequest{Product: "carte"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateQuoteRequest_Resolve(t *testing.T) {
	t.Run("resolves aliases and options", func(t *testing.T) {
		req := CalculateQuoteRequest{
			Product:  "card",
			Quantity: 200,
			Options:  pricing.RawOptions{Finish: "laminated", Paper: "couche-350-mat"},
			Design:   "creation",
		}

		product, opts, design := req.Resolve()

		assert.Equal(t, pricing.ProductCard, product)
		assert.Equal(t, pricing.FinishLaminated, opts.Finish)
		require.NotNil(t, opts.Paper)
		assert.Equal(t, pricing.PaperCoated, opts.Paper.Family)
		assert.Equal(t, 350, opts.Paper.Grammage)
		require.NotNil(t, design)
		assert.Equal(t, pricing.DesignCreation, design.Kind)
	})

	t.Run("no design when none requested", func(t *testing.T) {
		for _, d := range []string{"", "none", "aucun"} {
			req := CalculateQuoteRequest{Product: "flyer", Design: d}
			_, _, design := req.Resolve()
			assert.Nil(t, design, d)
		}
	})
}

func TestSaveQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       SaveQuoteRequest
		expectedError error
	}{
		{
			name:    "manual quote",
			request: SaveQuoteRequest{Client: "Atelier Nour", Product: "flyer", Quantity: 100, Price: "40"},
		},
		{
			name:          "missing client",
			request:       SaveQuoteRequest{Product: "flyer"},
			expectedError: ErrMissingClient,
		},
		{
			name:          "priced quote without product",
			request:       SaveQuoteRequest{Client: "Atelier Nour", Pricing: &CalculateQuoteRequest{Quantity: 10}},
			expectedError: ErrMissingProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveOrderRequest_Validate(t *testing.T) {
	assert.Equal(t, ErrMissingClient, (&SaveOrderRequest{}).Validate())
	assert.NoError(t, (&SaveOrderRequest{Client: "Atelier Nour"}).Validate())
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.Equal(t, ErrMissingStatus, (&UpdateStatusRequest{Status: " "}).Validate())
	assert.NoError(t, (&UpdateStatusRequest{Status: "Terminé", Kind: "prod"}).Validate())
}

func TestStockMovementRequest_Validate(t *testing.T) {
	assert.NoError(t, (&StockMovementRequest{Delta: 500}).Validate())
	assert.NoError(t, (&StockMovementRequest{Delta: -20}).Validate())
	assert.Equal(t, ErrZeroDelta, (&StockMovementRequest{Reason: "inventaire"}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name:          "validation error message format",
			validationErr: &ValidationError{Field: "product", Message: "is required"},
			expected:      "product: is required",
		},
		{
			name:          "validation error with different field",
			validationErr: &ValidationError{Field: "client", Message: "is required"},
			expected:      "client: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}

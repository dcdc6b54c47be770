// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/print-quote-service/internal/pricing"
)

// CalculateQuoteRequest represents the JSON request body for the quote endpoints.
//
// Options use the shop's wire names (mode, paper, paperInt, paperCov, coverType,
// pelliculage, finition). Quantity is checked by the pricing engine so that
// invalid quantities are reported the same way for every entry point.
//
// @Description Request to price a print job
// @Example {"product": "flyer", "quantity": 500, "options": {"mode": "rectoVerso", "paper": "couche-135-mat"}}
type CalculateQuoteRequest struct {
	Product  string             `json:"product" example:"flyer"`
	Options  pricing.RawOptions `json:"options"`
	Quantity int                `json:"quantity" example:"500"`
	// Design is the optional PAO service: conception, layout or correction.
	Design string `json:"design,omitempty" example:"conception"`
} // @name CalculateQuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingProduct is returned when product is empty.
	ErrMissingProduct = &ValidationError{Field: "product", Message: "is required"}
	// ErrMissingClient is returned when a quote or order has no client.
	ErrMissingClient = &ValidationError{Field: "client", Message: "is required"}
	// ErrMissingStatus is returned by status updates without a status.
	ErrMissingStatus = &ValidationError{Field: "status", Message: "is required"}
	// ErrZeroDelta is returned by a stock movement that moves no sheets.
	ErrZeroDelta = &ValidationError{Field: "delta", Message: "must not be zero"}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CalculateQuoteRequest) Validate() error {
	if strings.TrimSpace(r.Product) == "" {
		return ErrMissingProduct
	}
	return nil
}

// Resolve parses the wire identifiers into engine inputs. A design request
// is only returned when a service other than none was asked for.
func (r *CalculateQuoteRequest) Resolve() (pricing.ProductType, pricing.Options, *pricing.DesignRequest) {
	var design *pricing.DesignRequest
	if kind := pricing.ParseDesignKind(r.Design); kind != pricing.DesignNone {
		design = &pricing.DesignRequest{Kind: kind}
	}
	return pricing.ParseProductType(r.Product), r.Options.Resolve(), design
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// SaveQuoteRequest represents the JSON request body for saving a quote.
//
// Either Pricing is set and the server prices the job, or Product, Quantity
// and Price describe a manually priced quote. Reusing a Ref replaces the
// stored quote.
type SaveQuoteRequest struct {
	Ref         string                 `json:"ref,omitempty" example:"Q-482913"`
	Client      string                 `json:"client" example:"Imprimerie Centrale"`
	Salesperson string                 `json:"salesperson,omitempty" example:"Sami"`
	Status      string                 `json:"status,omitempty"`
	Product     string                 `json:"product,omitempty"`
	Quantity    int                    `json:"quantity,omitempty"`
	Price       string                 `json:"price,omitempty" example:"48.00"`
	Description string                 `json:"description,omitempty"`
	Pricing     *CalculateQuoteRequest `json:"pricing,omitempty"`
} // @name SaveQuoteRequest

// Validate checks the fields the server cannot fill in.
func (r *SaveQuoteRequest) Validate() error {
	if strings.TrimSpace(r.Client) == "" {
		return ErrMissingClient
	}
	if r.Pricing != nil {
		return r.Pricing.Validate()
	}
	return nil
}

// SaveOrderRequest represents the JSON request body for saving an order.
type SaveOrderRequest struct {
	Ref              string                 `json:"ref,omitempty" example:"D-482977"`
	Client           string                 `json:"client" example:"Imprimerie Centrale"`
	Salesperson      string                 `json:"salesperson,omitempty"`
	Product          string                 `json:"product,omitempty"`
	Quantity         int                    `json:"quantity,omitempty"`
	Price            string                 `json:"price,omitempty" example:"48.00"`
	Description      string                 `json:"description,omitempty"`
	ProductionStatus string                 `json:"production_status,omitempty" example:"En attente"`
	AccountingStatus string                 `json:"accounting_status,omitempty" example:"Non payé"`
	Pricing          *CalculateQuoteRequest `json:"pricing,omitempty"`
} // @name SaveOrderRequest

// Validate checks the fields the server cannot fill in.
func (r *SaveOrderRequest) Validate() error {
	if strings.TrimSpace(r.Client) == "" {
		return ErrMissingClient
	}
	if r.Pricing != nil {
		return r.Pricing.Validate()
	}
	return nil
}

// UpdateStatusRequest represents the JSON request body of a status change.
// Kind selects the order status to change (prod or compta) and is ignored
// for quotes.
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Terminé"`
	Kind   string `json:"kind,omitempty" example:"prod"`
} // @name UpdateStatusRequest

// Validate requires a non-blank status.
func (r *UpdateStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return ErrMissingStatus
	}
	return nil
}

// SaveStockRequest represents the JSON request body for setting a paper's
// stock. The paper code comes from the path.
type SaveStockRequest struct {
	Name      string `json:"name" example:"Couché mat 135g"`
	Qty       int    `json:"qty" example:"1200"`
	Threshold int    `json:"threshold" example:"500"`
	Price     string `json:"price,omitempty" example:"0.12"`
} // @name SaveStockRequest

// StockMovementRequest represents the JSON request body of a delivery
// (positive delta) or withdrawal (negative delta).
type StockMovementRequest struct {
	Delta  int    `json:"delta" example:"-250"`
	Reason string `json:"reason,omitempty" example:"D-482977"`
} // @name StockMovementRequest

// Validate rejects a movement of zero sheets.
func (r *StockMovementRequest) Validate() error {
	if r.Delta == 0 {
		return ErrZeroDelta
	}
	return nil
}

// UpdateRateConfigRequest represents the JSON request body for publishing rates.
type UpdateRateConfigRequest struct {
	// Config is the rate document in the shop's JSON layout (tarifs, prix_fixes, ...).
	Config pricing.Configuration `json:"config"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateRateConfigRequest

package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/print-quote-service/internal/pricing"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInternal       = "internal_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeNotFound       = "not_found"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeConflict       = "conflict"
	ErrCodeTimeout        = "timeout"
	// ErrCodeUnprocessable marks a well-formed request the active rates cannot price.
	ErrCodeUnprocessable = "unprocessable"
	// ErrCodeUnavailable marks a store that is down or not configured.
	ErrCodeUnavailable = "service_unavailable"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:            ErrCodeInvalidRequest,
	http.StatusRequestEntityTooLarge: ErrCodeInvalidRequest,
	http.StatusUnauthorized:          ErrCodeUnauthorized,
	http.StatusNotFound:              ErrCodeNotFound,
	http.StatusConflict:              ErrCodeConflict,
	http.StatusUnprocessableEntity:   ErrCodeUnprocessable,
	http.StatusTooManyRequests:       ErrCodeRateLimit,
	http.StatusServiceUnavailable:    ErrCodeUnavailable,
	http.StatusRequestTimeout:        ErrCodeTimeout,
	http.StatusGatewayTimeout:        ErrCodeTimeout,
}

// CodeForStatus returns the error code answering an HTTP status. Statuses
// without a code of their own are internal errors.
func CodeForStatus(status int) string {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}

// SuccessResponse is the envelope around every successful payload.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-03-02T10:00:00Z"`
} // @name SuccessResponse

// NewSuccess wraps data for the request requestID.
func NewSuccess(data interface{}, requestID string) SuccessResponse {
	return SuccessResponse{Data: data, RequestID: requestID, Timestamp: time.Now().UTC()}
}

// ErrorResponse is the envelope of every failed request.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"quantity: must be a positive integer"`
	// Details names what the failure refers to, e.g. {"product": "carte"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-03-02T10:00:00Z"`
} // @name ErrorResponse

// NewErrorResponse builds the body answering status, with the code derived
// from the status.
func NewErrorResponse(status int, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     CodeForStatus(status),
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}

// WithDetails returns a copy of e carrying details.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// QuoteResponse is the priced quote with its display total and job ticket text.
// @Description Priced quote
type QuoteResponse struct {
	Quote *pricing.Quote `json:"quote"`
	// Total is the quote total formatted for display
	Total   string `json:"total" example:"48.00 DT"`
	Summary string `json:"summary" example:"Format Standard\nImpression: Recto/Verso\nPapier: Couché 135g Mat"`
} // @name QuoteResponse

// NewQuoteResponse builds the response for q and its rendered summary.
func NewQuoteResponse(q *pricing.Quote, summary string) QuoteResponse {
	return QuoteResponse{
		Quote:   q,
		Total:   pricing.FormatPrice(q.Total),
		Summary: summary,
	}
}

// SummaryResponse carries the job ticket text of a quote.
// @Description Job ticket text
type SummaryResponse struct {
	Summary string `json:"summary"`
} // @name SummaryResponse

// RateConfigResponse describes one stored version of the rates.
// @Description Rate configuration version
type RateConfigResponse struct {
	Version   int                   `json:"version" example:"3"`
	Active    bool                  `json:"active"`
	Config    pricing.Configuration `json:"config"`
	Repairs   []string              `json:"repairs,omitempty"`
	CreatedBy string                `json:"created_by,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
} // @name RateConfigResponse

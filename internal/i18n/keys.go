package i18n

// Request and transport failures.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"

	// ErrKeyStoreUnavailable covers a quote book or rate store that is
	// missing or behind an open circuit.
	ErrKeyStoreUnavailable = "error.store_unavailable"
)

// Authentication failures.
const (
	ErrKeyUnauthorized   = "error.unauthorized"
	ErrKeyAPIKeyRequired = "error.api_key_required"
	ErrKeyInvalidAPIKey  = "error.invalid_api_key"
)

// Field validation, one key per rejected input.
const (
	ErrKeyValidationProduct    = "error.validation.product"
	ErrKeyValidationClient     = "error.validation.client"
	ErrKeyValidationStatus     = "error.validation.status"
	ErrKeyValidationStatusKind = "error.validation.status_kind"
	ErrKeyValidationRecord     = "error.validation.record"
	ErrKeyValidationVersion    = "error.validation.version"
	ErrKeyValidationRates      = "error.validation.rates"
	ErrKeyValidationFilter     = "error.validation.filter"
	ErrKeyValidationDelta      = "error.validation.delta"
)

// ErrKeyInsufficientStock answers a withdrawal larger than the paper stock.
const ErrKeyInsufficientStock = "error.stock.insufficient"

// Pricing failure keys, one per engine failure kind.
const (
	ErrKeyInvalidQuantity  = "error.pricing.invalid_quantity"
	ErrKeyUnknownProduct   = "error.pricing.unknown_product"
	ErrKeyMissingRateTable = "error.pricing.missing_rate_table"
	ErrKeyCalculation      = "error.pricing.calculation"
)

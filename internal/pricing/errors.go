package pricing

import (
	"errors"
	"fmt"
)

// Failure kinds returned by the engine. Match them with errors.Is.
var (
	// ErrInvalidQuantity indicates a missing, zero or negative quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownProduct indicates a product type with no registered calculator.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrMissingRateTable indicates the configuration lacks a table a calculator needs.
	ErrMissingRateTable = errors.New("missing rate table")

	// ErrCalculation wraps any other failure raised while pricing a product.
	ErrCalculation = errors.New("calculation error")
)

// Failure is the typed error the engine returns instead of a quote.
type Failure struct {
	Kind    error
	Product ProductType
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return f.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Is matches the failure against its kind.
func (f *Failure) Is(target error) bool {
	return target == f.Kind
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(kind error, product ProductType, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Product: product, Message: fmt.Sprintf(format, args...)}
}

func missingTable(product ProductType, table string) *Failure {
	return fail(ErrMissingRateTable, product, "no %s table for %s", table, product)
}

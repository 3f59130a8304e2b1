package money

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCurrency is returned when a currency code is not present in a registry.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnresolvedLocale is returned when a locale has no canonical currency.
	ErrUnresolvedLocale = errors.New("unresolved locale")

	// ErrCurrencyMismatch is returned when a binary operation is applied to
	// amounts denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInexactDivision is returned when a quotient cannot be represented
	// exactly and no rounding was supplied.
	ErrInexactDivision = errors.New("inexact division")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrFormatParse is returned when a formatted amount cannot be parsed.
	// The concrete error is a [*ParseError].
	ErrFormatParse = errors.New("format parse")

	// ErrRateUnavailable is returned when no exchange rate can be obtained
	// for a currency pair. The concrete error is a [*RateError].
	ErrRateUnavailable = errors.New("rate unavailable")
)

// ParseError describes a failure to parse a formatted amount.
type ParseError struct {
	Input    string // text being parsed
	Pos      int    // byte offset of the offending part of Input
	Expected string // what the parser was looking for
	Err      error  // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing %q at offset %d: expected %s", e.Input, e.Pos, e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns [ErrFormatParse] and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormatParse}
	}
	return []error{ErrFormatParse, e.Err}
}

// RateError describes a failed exchange rate lookup.
// Lookup misses and timeouts are both reported as RateError.
type RateError struct {
	Provider string
	Base     string
	Quote    string
	Err      error
}

func (e *RateError) Error() string {
	msg := fmt.Sprintf("provider %q: ", e.Provider)
	if e.Base != "" || e.Quote != "" {
		msg += fmt.Sprintf("rate %v/%v: ", e.Base, e.Quote)
	}
	msg += ErrRateUnavailable.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns [ErrRateUnavailable] and the underlying cause.
func (e *RateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRateUnavailable}
	}
	return []error{ErrRateUnavailable, e.Err}
}

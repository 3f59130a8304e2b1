package money

import (
	"database/sql/driver"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// MaxCurrencyScale is the largest minor-unit exponent accepted by [NewCurrency].
const MaxCurrencyScale = 8

// Currency represents a currency unit, such as the US Dollar or the Brazilian Real.
// Its zero value reports the code XXX, which indicates an unknown currency.
//
// Currency is an immutable value and is safe for concurrent use by multiple
// goroutines. Two currencies are the same currency if their codes are equal,
// see [Currency.Equal].
//
// Currencies are normally obtained from a [Registry], for example the
// [ISO 4217] registry returned by [ISO].
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code   string // 3-letter code
	num    string // 3-digit code, may be empty
	name   string // english name, may be empty
	symbol string // display symbol, may be empty
	scale  int    // minor unit exponent
}

// NewCurrency returns a currency with the given properties.
// The code must consist of 3 upper-case ASCII letters, the numeric code
// must be empty or consist of 3 digits, and the scale must be between 0
// and [MaxCurrencyScale].
func NewCurrency(code, num string, scale int, name, symbol string) (Currency, error) {
	if !isAlphaCode(code) {
		return Currency{}, fmt.Errorf("code %q must consist of 3 upper-case letters", code)
	}
	if num != "" && !isNumCode(num) {
		return Currency{}, fmt.Errorf("numeric code %q must consist of 3 digits", num)
	}
	if scale < 0 || scale > MaxCurrencyScale {
		return Currency{}, fmt.Errorf("scale %v is out of range [0, %v]", scale, MaxCurrencyScale)
	}
	return Currency{code: code, num: num, scale: scale, name: name, symbol: symbol}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(code, num string, scale int, name, symbol string) Currency {
	c, err := NewCurrency(code, num, scale, name, symbol)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %q, %v, %q, %q) failed: %v", code, num, scale, name, symbol, err))
	}
	return c
}

func isAlphaCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isNumCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Code returns the 3-letter code of the currency.
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Num returns the 3-digit code of the currency or an empty string if
// the currency does not have one.
func (c Currency) Num() string {
	return c.num
}

// Name returns the english name of the currency.
// If the currency has no name, its code is returned.
func (c Currency) Name() string {
	if c.name == "" {
		return c.Code()
	}
	return c.name
}

// Symbol returns the display symbol of the currency, for example "R$".
// If the currency has no symbol, its code is returned.
func (c Currency) Symbol() string {
	if c.symbol == "" {
		return c.Code()
	}
	return c.symbol
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
//   - A scale of 0 indicates currencies without minor units, like the [Japanese Yen].
//   - A scale of 2 indicates currencies with cents, like the [US Dollar].
//   - A scale of 3 indicates currencies with 3-digit minor units, like the [Omani Rial].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return c.scale
}

// Equal returns true if both currencies have the same code.
func (c Currency) Equal(d Currency) bool {
	return c.Code() == d.Code()
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends a 3-letter code.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (c Currency) AppendText(text []byte) ([]byte, error) {
	return append(text, c.Code()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Currencies are unmarshaled through a [Registry], see [Registry.Lookup].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q':
		writePadded(state, `"`+c.Code()+`"`)
	case 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, c.Code())
	default:
		writeBadVerb(state, verb, "money.Currency", c.Code())
	}
}

// writePadded writes s honoring the width and the '-' flag of the state.
func writePadded(state fmt.State, s string) {
	pad := 0
	if w, ok := state.Width(); ok && w > len(s) {
		pad = w - len(s)
	}
	buf := make([]byte, 0, len(s)+pad)
	if !state.Flag('-') {
		for range pad {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, s...)
	if state.Flag('-') {
		for range pad {
			buf = append(buf, ' ')
		}
	}
	state.Write(buf) //nolint:errcheck
}

func writeBadVerb(state fmt.State, verb rune, typ, s string) {
	//nolint:errcheck
	fmt.Fprintf(state, "%%!%c(%s=%s)", verb, typ, s)
}

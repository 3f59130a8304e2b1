package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	fixed "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/inf.v0"
)

var bigTen = big.NewInt(10)

// Decimal represents an arbitrary-precision signed decimal number
// equal to coef / 10^scale, where scale is never negative.
// Its zero value is 0.
//
// Decimal is immutable and safe for concurrent use by multiple goroutines.
// Every arithmetic operation returns a new value. Addition, subtraction and
// multiplication are exact; division is exact or fails with [ErrInexactDivision]
// unless a [Rounding] is supplied, see [Decimal.QuoRound].
//
// Two decimals are equal only if both their coefficients and their scales
// are equal, so 1.5 and 1.50 are different values. Use [Decimal.Cmp] for
// numeric comparison.
type Decimal struct {
	value decimal.Decimal // exponent is always <= 0
}

// NewDecimal returns a decimal equal to coef / 10^scale.
// A negative scale multiplies the coefficient, so NewDecimal(5, -2) equals 500.
func NewDecimal(coef int64, scale int) Decimal {
	return newDecimal(big.NewInt(coef), scale)
}

// NewDecimalFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied.
func NewDecimalFromBigInt(coef *big.Int, scale int) Decimal {
	return newDecimal(new(big.Int).Set(coef), scale)
}

// newDecimal takes ownership of coef.
func newDecimal(coef *big.Int, scale int) Decimal {
	if scale < 0 {
		coef.Mul(coef, pow10(-scale))
		scale = 0
	}
	return Decimal{value: decimal.NewFromBigInt(coef, -int32(scale))} //nolint:gosec
}

// dec returns a copy of d as an [inf.Dec].
func (d Decimal) dec() *inf.Dec {
	return inf.NewDecBig(d.Coef(), inf.Scale(d.Scale())) //nolint:gosec
}

// fromDec converts an [inf.Dec], which may carry a negative scale, to a Decimal.
func fromDec(z *inf.Dec) Decimal {
	return newDecimal(new(big.Int).Set(z.UnscaledBig()), int(z.Scale()))
}

// fromShop converts a decimal produced by the backing library, which may
// carry a positive exponent, to a Decimal.
func fromShop(v decimal.Decimal) Decimal {
	if v.Exponent() > 0 {
		return newDecimal(v.Coefficient(), -int(v.Exponent()))
	}
	return Decimal{value: v}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// ParseDecimal converts a string to a decimal.
// The input must be a decimal literal, optionally signed and optionally in
// scientific notation:
//
//	1500.55
//	-0.010
//	1.5e3
//
// Trailing zeros are significant: "1.50" has scale 2.
func ParseDecimal(s string) (Decimal, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return Decimal{}, fmt.Errorf("parsing decimal %q: invalid syntax", s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	return fromShop(v), nil
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// NewDecimalFromFloat64 converts a float to a decimal using the shortest
// representation that round-trips to the same float.
// See also method [Decimal.Float64].
//
// NewDecimalFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewDecimalFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting float: special value %v", f)
	}
	return ParseDecimal(strconv.FormatFloat(f, 'f', -1, 64))
}

// NewDecimalFromFixed converts a fixed-point [github.com/govalues/decimal]
// value to a decimal with the same coefficient and scale.
func NewDecimalFromFixed(f fixed.Decimal) Decimal {
	coef := new(big.Int).SetUint64(f.Coef())
	if f.IsNeg() {
		coef.Neg(coef)
	}
	return newDecimal(coef, f.Scale())
}

// Fixed converts the decimal to a fixed-point [github.com/govalues/decimal] value.
//
// Fixed returns an error if the decimal has more than [fixed.MaxPrec] digits
// or a scale greater than [fixed.MaxScale], as the conversion would lose data.
func (d Decimal) Fixed() (fixed.Decimal, error) {
	f, err := fixed.Parse(d.String())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed-point: %w", d, err)
	}
	if !NewDecimalFromFixed(f).Equal(d) {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed-point: precision loss", d)
	}
	return f, nil
}

// Float64 returns the nearest binary floating-point number and reports
// whether the conversion is exact.
func (d Decimal) Float64() (f float64, exact bool) {
	return d.value.Float64()
}

// Coef returns a copy of the coefficient (unscaled value) of the decimal.
func (d Decimal) Coef() *big.Int {
	return d.value.Coefficient()
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return -int(d.value.Exponent())
}

// Prec returns the number of digits in the coefficient.
func (d Decimal) Prec() int {
	c := d.Coef()
	if c.Sign() == 0 {
		return 0
	}
	return len(c.Abs(c).String())
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Decimal) IsInt() bool {
	return d.value.IsInteger()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return Decimal{value: d.value.Neg()}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return Decimal{value: d.value.Abs()}
}

// Add returns the exact sum of decimals d and e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	return fromShop(d.value.Add(e.value))
}

// Sub returns the exact difference between decimals d and e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	return fromShop(d.value.Sub(e.value))
}

// Mul returns the exact product of decimals d and e.
// The scale of the result is the sum of the two scales.
func (d Decimal) Mul(e Decimal) Decimal {
	return fromShop(d.value.Mul(e.value))
}

// Quo returns the exact quotient of decimals d and e.
// The scale of the result is the smallest scale, not below the scale of d
// minus the scale of e, that represents the quotient exactly.
// See also method [Decimal.QuoRound].
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the quotient has a non-terminating decimal expansion ([ErrInexactDivision]).
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	q, err := d.quo(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return q, nil
}

func (d Decimal) quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	z := new(inf.Dec).QuoExact(d.dec(), e.dec())
	if z == nil {
		return Decimal{}, ErrInexactDivision
	}
	return fromDec(z), nil
}

// QuoRound returns the quotient of decimals d and e rounded to the scale
// and with the mode of rounding r.
// See also method [Decimal.Quo].
//
// QuoRound returns an error if the divisor is 0.
func (d Decimal) QuoRound(e Decimal, r Rounding) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	z := new(inf.Dec).QuoRound(d.dec(), e.dec(), inf.Scale(r.Scale()), r.Mode().rounder()) //nolint:gosec
	return fromDec(z), nil
}

// Round returns a decimal rounded to the specified number of digits after
// the decimal point using the given rounding mode.
// If the scale of the decimal is less than the specified scale, the result
// is zero-padded to the right, so the result always has the specified scale.
//
// Round panics if the scale is negative or the mode is not valid.
func (d Decimal) Round(scale int, mode RoundingMode) Decimal {
	if scale < 0 {
		panic(fmt.Sprintf("%v.Round(%v, %v) failed: negative scale", d, scale, mode))
	}
	if !mode.valid() {
		panic(fmt.Sprintf("%v.Round(%v, %v) failed: invalid rounding mode", d, scale, mode))
	}
	if scale >= d.Scale() {
		return d.Pad(scale)
	}
	return Decimal{value: mode.round(d.value, int32(scale))} //nolint:gosec
}

// Pad returns a decimal zero-padded to the specified number of digits after
// the decimal point. If the scale of the decimal is not less than the
// specified scale, the decimal is returned unchanged.
func (d Decimal) Pad(scale int) Decimal {
	if scale <= d.Scale() {
		return d
	}
	coef := d.Coef()
	coef.Mul(coef, pow10(scale-d.Scale()))
	return newDecimal(coef, scale)
}

// Trim returns a decimal with trailing zeros removed up to the specified
// number of digits after the decimal point.
func (d Decimal) Trim(scale int) Decimal {
	coef, s := d.Coef(), d.Scale()
	q, m := new(big.Int), new(big.Int)
	for s > scale && s > 0 {
		q.QuoRem(coef, bigTen, m)
		if m.Sign() != 0 {
			break
		}
		coef.Set(q)
		s--
	}
	return newDecimal(coef, s)
}

// Cmp compares decimals numerically and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Cmp ignores scale: 1.5 and 1.50 compare as equal.
// See also method [Decimal.Equal].
func (d Decimal) Cmp(e Decimal) int {
	return d.value.Cmp(e.value)
}

// Equal returns true if decimals have equal coefficients and equal scales.
// See also method [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.Scale() == e.Scale() && d.Cmp(e) == 0
}

// String implements the [fmt.Stringer] interface and returns a plain
// representation of the decimal with all digits after the decimal point,
// for example "-0.010".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.value.StringFixed(int32(d.Scale())) //nolint:gosec
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is encoded as a JSON string to preserve its scale.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return d.UnmarshalText(text)
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseDecimal(value)
	case []byte:
		*d, err = ParseDecimal(string(value))
	case int64:
		*d = NewDecimal(value, 0)
	case float64:
		*d, err = NewDecimalFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values", Decimal{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

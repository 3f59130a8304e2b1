package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/inf.v0"
)

// RoundingMode specifies how digits are discarded when a value is rounded.
type RoundingMode int

const (
	// HalfEven rounds to the nearest neighbor, and ties to the even neighbor
	// ([banker's rounding]). It is the default mode of the engine.
	//
	// [banker's rounding]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbor, and ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, and ties toward zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

var modeNames = [...]string{
	HalfEven: "HALF_EVEN",
	HalfUp:   "HALF_UP",
	HalfDown: "HALF_DOWN",
	Up:       "UP",
	Down:     "DOWN",
	Ceiling:  "CEILING",
	Floor:    "FLOOR",
}

func (m RoundingMode) valid() bool {
	return m >= HalfEven && m <= Floor
}

// String returns the name of the mode, for example "HALF_UP".
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseRoundingMode converts a name returned by [RoundingMode.String] to a mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range modeNames {
		if name == s {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// rounders maps modes to their [inf.Rounder] counterparts, used for
// division and for the modes the backing decimal has no method for.
var rounders = [...]inf.Rounder{
	HalfEven: inf.RoundHalfEven,
	HalfUp:   inf.RoundHalfUp,
	HalfDown: inf.RoundHalfDown,
	Up:       inf.RoundUp,
	Down:     inf.RoundDown,
	Ceiling:  inf.RoundCeil,
	Floor:    inf.RoundFloor,
}

func (m RoundingMode) rounder() inf.Rounder {
	return rounders[m]
}

// round rounds v to the given number of digits after the decimal point.
// The exponent of the result is always -places.
func (m RoundingMode) round(v decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case HalfUp:
		return v.Round(places)
	case Up:
		return v.RoundUp(places)
	case Down:
		return v.RoundDown(places)
	case Ceiling:
		return v.RoundCeil(places)
	case Floor:
		return v.RoundFloor(places)
	case HalfEven:
		return v.RoundBank(places)
	default:
		z := new(inf.Dec).Round(inf.NewDecBig(v.Coefficient(), inf.Scale(-v.Exponent())), inf.Scale(places), m.rounder())
		return decimal.NewFromBigInt(z.UnscaledBig(), -int32(z.Scale()))
	}
}

// Rounding reduces the precision of decimals and amounts to a fixed scale
// using a fixed [RoundingMode].
// Rounding is an [Operator]; applying it twice gives the same result as
// applying it once.
//
// The zero value rounds to scale 0 using [HalfEven].
type Rounding struct {
	scale int
	mode  RoundingMode
}

// NewRounding returns a rounding to the given scale and mode.
// NewRounding returns an error if the scale is negative or the mode is not valid.
func NewRounding(scale int, mode RoundingMode) (Rounding, error) {
	if scale < 0 {
		return Rounding{}, fmt.Errorf("rounding scale %v is negative", scale)
	}
	if !mode.valid() {
		return Rounding{}, fmt.Errorf("rounding mode %v is not valid", mode)
	}
	return Rounding{scale: scale, mode: mode}, nil
}

// MustNewRounding is like [NewRounding] but panics on invalid arguments.
func MustNewRounding(scale int, mode RoundingMode) Rounding {
	r, err := NewRounding(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("NewRounding(%v, %v) failed: %v", scale, mode, err))
	}
	return r
}

// Scale returns the target number of digits after the decimal point.
func (r Rounding) Scale() int {
	return r.scale
}

// Mode returns the rounding mode.
func (r Rounding) Mode() RoundingMode {
	return r.mode
}

// Round returns the decimal rounded to the scale of r.
// The result always has the scale of r.
func (r Rounding) Round(d Decimal) Decimal {
	return d.Round(r.scale, r.mode)
}

// Apply rounds the amount to the scale of r, preserving its currency.
// Apply never fails; it implements the [Operator] interface.
func (r Rounding) Apply(a Amount) (Amount, error) {
	return NewAmount(a.Curr(), r.Round(a.Decimal())), nil
}

// String returns a representation such as "HALF_UP(2)".
func (r Rounding) String() string {
	return fmt.Sprintf("%v(%d)", r.mode, r.scale)
}

// CurrencyRounding returns an operator that rounds an amount to the scale
// of its own currency using the given mode.
func CurrencyRounding(mode RoundingMode) Operator {
	return OperatorFunc(func(a Amount) (Amount, error) {
		r, err := NewRounding(a.Curr().Scale(), mode)
		if err != nil {
			return Amount{}, err
		}
		return r.Apply(a)
	})
}

// DefaultRounding returns the default rounding operator of the engine:
// the scale of the amount's currency with [HalfEven].
func DefaultRounding() Operator {
	return CurrencyRounding(HalfEven)
}

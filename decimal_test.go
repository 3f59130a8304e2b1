package money

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	fixed "github.com/govalues/decimal"
)

func TestDecimal_ZeroValue(t *testing.T) {
	d := Decimal{}
	if d.String() != "0" || d.Scale() != 0 || !d.IsZero() {
		t.Errorf("Decimal{} = %v (scale %v), want 0", d, d.Scale())
	}
	if !d.Equal(NewDecimal(0, 0)) {
		t.Errorf("Decimal{} is not equal to NewDecimal(0, 0)")
	}
}

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		coef  int64
		scale int
		want  string
	}{
		{0, 0, "0"},
		{0, 2, "0.00"},
		{1, 2, "0.01"},
		{-1, 3, "-0.001"},
		{150055, 2, "1500.55"},
		{5, -2, "500"},
		{math.MaxInt64, 0, "9223372036854775807"},
		{math.MinInt64, 19, "-0.9223372036854775808"},
	}
	for _, tt := range tests {
		got := NewDecimal(tt.coef, tt.scale)
		if got.String() != tt.want {
			t.Errorf("NewDecimal(%v, %v) = %q, want %q", tt.coef, tt.scale, got, tt.want)
		}
	}
}

func TestNewDecimalFromBigInt(t *testing.T) {
	coef, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	got := NewDecimalFromBigInt(coef, 10)
	want := "12345678901234567890.1234567890"
	if got.String() != want {
		t.Errorf("NewDecimalFromBigInt(%v, 10) = %q, want %q", coef, got, want)
	}
	coef.SetInt64(0)
	if got.String() != want {
		t.Errorf("NewDecimalFromBigInt did not copy its coefficient")
	}
}

func TestParseDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s         string
			wantCoef  string
			wantScale int
		}{
			{"0", "0", 0},
			{"1.50", "150", 2},
			{"-0.010", "-10", 3},
			{"1500.55", "150055", 2},
			{"1.5e3", "1500", 0},
			{"1.5e-3", "15", 4},
			{"123456789012345678901234567890.5", "1234567890123456789012345678905", 1},
		}
		for _, tt := range tests {
			got, err := ParseDecimal(tt.s)
			if err != nil {
				t.Errorf("ParseDecimal(%q) failed: %v", tt.s, err)
				continue
			}
			if got.Coef().String() != tt.wantCoef || got.Scale() != tt.wantScale {
				t.Errorf("ParseDecimal(%q) = %v/%v, want %v/%v", tt.s, got.Coef(), got.Scale(), tt.wantCoef, tt.wantScale)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", " 1", "1 ", "1,5", "abc", "1.2.3", "--1"}
		for _, tt := range tests {
			_, err := ParseDecimal(tt)
			if err == nil {
				t.Errorf("ParseDecimal(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseDecimal(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseDecimal(\"x\") did not panic")
		}
	}()
	MustParseDecimal("x")
}

func TestNewDecimalFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want string
		}{
			{0.1, "0.1"},
			{1500.55, "1500.55"},
			{-2, "-2"},
		}
		for _, tt := range tests {
			got, err := NewDecimalFromFloat64(tt.f)
			if err != nil {
				t.Errorf("NewDecimalFromFloat64(%v) failed: %v", tt.f, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewDecimalFromFloat64(%v) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := NewDecimalFromFloat64(f)
			if err == nil {
				t.Errorf("NewDecimalFromFloat64(%v) did not fail", f)
			}
		}
	})
}

func TestDecimal_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{"0", "1.50", "-0.010", "92233720368547758.07"}
		for _, tt := range tests {
			d := MustParseDecimal(tt)
			f, err := d.Fixed()
			if err != nil {
				t.Errorf("%v.Fixed() failed: %v", d, err)
				continue
			}
			if f.String() != tt {
				t.Errorf("%v.Fixed() = %v, want %v", d, f, tt)
			}
			if got := NewDecimalFromFixed(f); !got.Equal(d) {
				t.Errorf("NewDecimalFromFixed(%v) = %v, want %v", f, got, d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d := MustParseDecimal("123456789012345678901234567890")
		_, err := d.Fixed()
		if err == nil {
			t.Errorf("%v.Fixed() did not fail", d)
		}
	})

	t.Run("from fixed", func(t *testing.T) {
		f := fixed.MustParse("-12.345")
		got := NewDecimalFromFixed(f)
		if got.String() != "-12.345" || got.Scale() != 3 {
			t.Errorf("NewDecimalFromFixed(%v) = %v", f, got)
		}
	})
}

func TestDecimal_Arithmetic(t *testing.T) {
	tests := []struct {
		d, e             string
		wantAdd, wantSub string
		wantMul          string
	}{
		{"1", "2", "3", "-1", "2"},
		{"1.5", "0.25", "1.75", "1.25", "0.375"},
		{"100", "5.00", "105.00", "95.00", "500.00"},
		{"-0.01", "0.01", "0.00", "-0.02", "-0.0001"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891", "123456789012345678901234567889", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		d, e := MustParseDecimal(tt.d), MustParseDecimal(tt.e)
		if got := d.Add(e); got.String() != tt.wantAdd {
			t.Errorf("%v.Add(%v) = %v, want %v", d, e, got, tt.wantAdd)
		}
		if got := d.Sub(e); got.String() != tt.wantSub {
			t.Errorf("%v.Sub(%v) = %v, want %v", d, e, got, tt.wantSub)
		}
		if got := d.Mul(e); got.String() != tt.wantMul {
			t.Errorf("%v.Mul(%v) = %v, want %v", d, e, got, tt.wantMul)
		}
	}
}

func TestDecimal_Neg(t *testing.T) {
	tests := []string{"0", "1.50", "-0.010", "123456789012345678901234567890.12"}
	for _, tt := range tests {
		d := MustParseDecimal(tt)
		got := d.Neg().Neg()
		if !got.Equal(d) {
			t.Errorf("%v.Neg().Neg() = %v, want %v", d, got, d)
		}
	}
}

func TestDecimal_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e, want string
		}{
			{"1", "4", "0.25"},
			{"1", "8", "0.125"},
			{"10", "4", "2.5"},
			{"1.00", "4", "0.25"},
			{"100.00", "2", "50.00"},
			{"1.5", "0.03", "50"},
			{"-3", "2", "-1.5"},
		}
		for _, tt := range tests {
			d, e := MustParseDecimal(tt.d), MustParseDecimal(tt.e)
			got, err := d.Quo(e)
			if err != nil {
				t.Errorf("%v.Quo(%v) failed: %v", d, e, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Quo(%v) = %v, want %v", d, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			d, e string
			want error
		}{
			{"100", "3", ErrInexactDivision},
			{"1", "7", ErrInexactDivision},
			{"1", "0", ErrDivisionByZero},
			{"0", "0.00", ErrDivisionByZero},
		}
		for _, tt := range tests {
			d, e := MustParseDecimal(tt.d), MustParseDecimal(tt.e)
			_, err := d.Quo(e)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v.Quo(%v) error = %v, want %v", d, e, err, tt.want)
			}
		}
	})
}

func TestDecimal_QuoRound(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e  string
			scale int
			mode  RoundingMode
			want  string
		}{
			{"100", "3", 2, HalfUp, "33.33"},
			{"200", "3", 2, HalfUp, "66.67"},
			{"200", "3", 2, Down, "66.66"},
			{"-200", "3", 2, HalfEven, "-66.67"},
			{"1", "8", 2, HalfEven, "0.12"},
			{"1", "8", 2, HalfUp, "0.13"},
			{"1", "8", 5, HalfUp, "0.12500"},
			{"1", "3", 0, Ceiling, "1"},
			{"-1", "8", 2, HalfDown, "-0.12"},
			{"-1", "3", 0, Floor, "-1"},
			{"-1", "3", 1, Up, "-0.4"},
			{"2", "-3", 2, HalfEven, "-0.67"},
			{"1.00", "0.3", 4, HalfEven, "3.3333"},
		}
		for _, tt := range tests {
			d, e := MustParseDecimal(tt.d), MustParseDecimal(tt.e)
			r := MustNewRounding(tt.scale, tt.mode)
			got, err := d.QuoRound(e, r)
			if err != nil {
				t.Errorf("%v.QuoRound(%v, %v) failed: %v", d, e, r, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.QuoRound(%v, %v) = %v, want %v", d, e, r, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewDecimal(1, 0).QuoRound(Decimal{}, MustNewRounding(2, HalfUp))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("QuoRound() error = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestDecimal_Round(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		mode  RoundingMode
		want  string
	}{
		{"2.5", 0, HalfEven, "2"},
		{"3.5", 0, HalfEven, "4"},
		{"2.5", 0, HalfUp, "3"},
		{"2.5", 0, HalfDown, "2"},
		{"-2.5", 0, HalfUp, "-3"},
		{"-2.5", 0, HalfDown, "-2"},
		{"2.1", 0, Up, "3"},
		{"-2.1", 0, Up, "-3"},
		{"2.9", 0, Down, "2"},
		{"-2.9", 0, Down, "-2"},
		{"-2.1", 0, Ceiling, "-2"},
		{"2.1", 0, Ceiling, "3"},
		{"-2.1", 0, Floor, "-3"},
		{"2.9", 0, Floor, "2"},
		{"1.005", 2, HalfEven, "1.00"},
		{"1.015", 2, HalfEven, "1.02"},
		{"1.5", 3, HalfEven, "1.500"},
		{"0.004", 2, HalfUp, "0.00"},
		{"-2.345", 2, HalfEven, "-2.34"},
		{"-2.355", 2, HalfEven, "-2.36"},
		{"-0.5", 0, HalfEven, "0"},
		{"2.3450001", 2, HalfDown, "2.35"},
		{"-2.3450001", 2, HalfDown, "-2.35"},
		{"2.3449999", 2, HalfUp, "2.34"},
		{"-1.001", 2, Up, "-1.01"},
		{"-1.009", 2, Down, "-1.00"},
	}
	for _, tt := range tests {
		d := MustParseDecimal(tt.d)
		got := d.Round(tt.scale, tt.mode)
		if got.String() != tt.want {
			t.Errorf("%v.Round(%v, %v) = %v, want %v", d, tt.scale, tt.mode, got, tt.want)
		}
	}

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Round(-1, HalfEven) did not panic")
			}
		}()
		NewDecimal(1, 0).Round(-1, HalfEven)
	})
}

func TestDecimal_PadTrim(t *testing.T) {
	tests := []struct {
		d        string
		scale    int
		wantPad  string
		wantTrim string
	}{
		{"1.5", 3, "1.500", "1.5"},
		{"1.500", 1, "1.500", "1.5"},
		{"1.500", 0, "1.500", "1.5"},
		{"100", 2, "100.00", "100"},
		{"0.000", 0, "0.000", "0"},
	}
	for _, tt := range tests {
		d := MustParseDecimal(tt.d)
		if got := d.Pad(tt.scale); got.String() != tt.wantPad {
			t.Errorf("%v.Pad(%v) = %v, want %v", d, tt.scale, got, tt.wantPad)
		}
		if got := d.Trim(tt.scale); got.String() != tt.wantTrim {
			t.Errorf("%v.Trim(%v) = %v, want %v", d, tt.scale, got, tt.wantTrim)
		}
	}
}

func TestDecimal_CmpEqual(t *testing.T) {
	tests := []struct {
		d, e      string
		wantCmp   int
		wantEqual bool
	}{
		{"1.5", "1.50", 0, false},
		{"1.50", "1.50", 0, true},
		{"-1", "1", -1, false},
		{"2", "1.99", 1, false},
		{"0", "0.00", 0, false},
	}
	for _, tt := range tests {
		d, e := MustParseDecimal(tt.d), MustParseDecimal(tt.e)
		if got := d.Cmp(e); got != tt.wantCmp {
			t.Errorf("%v.Cmp(%v) = %v, want %v", d, e, got, tt.wantCmp)
		}
		if got := d.Equal(e); got != tt.wantEqual {
			t.Errorf("%v.Equal(%v) = %v, want %v", d, e, got, tt.wantEqual)
		}
	}
}

func TestDecimal_Predicates(t *testing.T) {
	tests := []struct {
		d     string
		sign  int
		isInt bool
		prec  int
	}{
		{"0", 0, true, 0},
		{"1.00", 1, true, 3},
		{"-0.5", -1, false, 1},
		{"12.345", 1, false, 5},
	}
	for _, tt := range tests {
		d := MustParseDecimal(tt.d)
		if got := d.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %v, want %v", d, got, tt.sign)
		}
		if got := d.IsInt(); got != tt.isInt {
			t.Errorf("%v.IsInt() = %v, want %v", d, got, tt.isInt)
		}
		if got := d.Prec(); got != tt.prec {
			t.Errorf("%v.Prec() = %v, want %v", d, got, tt.prec)
		}
		if d.IsPos() != (tt.sign > 0) || d.IsNeg() != (tt.sign < 0) || d.IsZero() != (tt.sign == 0) {
			t.Errorf("%v predicates disagree with sign %v", d, tt.sign)
		}
	}
}

func TestDecimal_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := MustParseDecimal("1.50")
		got, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", d, err)
		}
		if string(got) != `"1.50"` {
			t.Errorf("json.Marshal(%v) = %s, want \"1.50\"", d, got)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			text string
			want string
		}{
			{`"1.50"`, "1.50"},
			{`1.50`, "1.50"},
			{`-7`, "-7"},
		}
		for _, tt := range tests {
			var got Decimal
			if err := json.Unmarshal([]byte(tt.text), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.text, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.text, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Decimal
		if err := json.Unmarshal([]byte(`"abc"`), &got); err == nil {
			t.Errorf("json.Unmarshal(\"abc\") did not fail")
		}
	})
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"5.25", "5.25"},
			{[]byte("0.001"), "0.001"},
			{int64(42), "42"},
			{float64(1.5), "1.5"},
		}
		for _, tt := range tests {
			var got Decimal
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, v := range []any{nil, true, "x"} {
			var got Decimal
			if err := got.Scan(v); err == nil {
				t.Errorf("Scan(%v) did not fail", v)
			}
		}
	})
}

func TestDecimal_String(t *testing.T) {
	tests := []struct {
		coef  int64
		scale int
		want  string
	}{
		{0, 0, "0"},
		{0, 2, "0.00"},
		{-10, 3, "-0.010"},
		{150055, 2, "1500.55"},
		{5, -2, "500"},
		{-7, 0, "-7"},
	}
	for _, tt := range tests {
		got := NewDecimal(tt.coef, tt.scale)
		if got.String() != tt.want {
			t.Errorf("NewDecimal(%v, %v).String() = %q, want %q", tt.coef, tt.scale, got, tt.want)
		}
	}
}

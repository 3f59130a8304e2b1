package money

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyStyle selects how the currency of an amount is displayed.
type CurrencyStyle int

const (
	// Symbol displays the currency symbol, for example "R$".
	Symbol CurrencyStyle = iota
	// Code displays the alphabetic code, for example "BRL".
	Code
	// Name displays the currency name, for example "Brazilian real".
	Name
)

func (s CurrencyStyle) String() string {
	switch s {
	case Symbol:
		return "SYMBOL"
	case Code:
		return "CODE"
	case Name:
		return "NAME"
	}
	return fmt.Sprintf("CurrencyStyle(%d)", int(s))
}

// Symbols holds the separators used to render the numeral of an amount.
type Symbols struct {
	Group   string // digit grouping separator, for example ","
	Decimal string // decimal separator, for example "."
}

var defaultSymbols = Symbols{Group: ",", Decimal: "."}

// FormatConfig describes how amounts are rendered and parsed.
// Configurations are plain values, built per call.
//
// Pattern follows a subset of the CLDR decimal pattern syntax:
//
//	¤       position of the currency
//	#,##0   integer digits, grouped by three when a comma is present
//	.00##   fraction digits: '0' is a required digit, '#' an optional one
//
// Any other text of the pattern is copied literally.
// Without a pattern, amounts are rendered as "¤ #,##0" followed by all their
// fraction digits, and at least as many as the scale of the currency.
// Such output parses back into an equal amount, provided the scale of the
// amount is not below the scale of its currency; otherwise the parsed amount
// is numerically equal and has the scale of the currency.
//
// A pattern with fewer fraction digits than the amount rounds the amount
// using [HalfEven] and trims trailing zeros down to its required digits,
// so the result parses back into a numerically equal amount of a smaller scale.
type FormatConfig struct {
	Locale  string        // BCP 47 tag selecting separators, for example "pt-BR"
	Style   CurrencyStyle // how the currency is displayed
	Pattern string        // optional pattern, see above
	Symbols *Symbols      // optional separators overriding the locale
}

// layout is a parsed pattern.
type layout struct {
	prefix, suffix string // literal text around the numeral, may contain ¤
	grouping       bool
	minInt         int
	minFrac        int
	maxFrac        int // -1 means unlimited
}

const currencySign = "¤"

func isPatternDigit(r byte) bool {
	return r == '#' || r == '0' || r == ',' || r == '.'
}

func parsePattern(p string) (layout, error) {
	start := strings.IndexFunc(p, func(r rune) bool { return r < utf8.RuneSelf && isPatternDigit(byte(r)) })
	if start < 0 {
		return layout{}, fmt.Errorf("pattern %q has no digits", p)
	}
	end := start
	for end < len(p) && isPatternDigit(p[end]) {
		end++
	}
	lay := layout{prefix: p[:start], suffix: p[end:]}
	if strings.Count(lay.prefix+lay.suffix, currencySign) > 1 {
		return layout{}, fmt.Errorf("pattern %q has more than one currency sign", p)
	}

	intPart, fracPart, hasFrac := strings.Cut(p[start:end], ".")
	if strings.Contains(fracPart, ".") {
		return layout{}, fmt.Errorf("pattern %q has more than one decimal separator", p)
	}
	if strings.Contains(fracPart, ",") {
		return layout{}, fmt.Errorf("pattern %q groups fraction digits", p)
	}
	lay.grouping = strings.Contains(intPart, ",")
	lay.minInt = max(strings.Count(intPart, "0"), 1)
	if hasFrac {
		lay.minFrac = strings.Count(fracPart, "0")
		lay.maxFrac = len(fracPart)
		if strings.TrimRight(fracPart, "#") != strings.Repeat("0", lay.minFrac) {
			return layout{}, fmt.Errorf("pattern %q has an optional fraction digit before a required one", p)
		}
	}
	return lay, nil
}

// Formatter renders amounts as text and parses them back.
// It resolves currency tokens through its registry.
// Formatter is safe for concurrent use by multiple goroutines.
type Formatter struct {
	reg  *Registry
	seps sync.Map // locale tag -> Symbols
}

// NewFormatter returns a formatter resolving currencies through reg.
func NewFormatter(reg *Registry) *Formatter {
	return &Formatter{reg: reg}
}

// symbols returns the separators for the configuration.
// Locale separators are taken from the way golang.org/x/text/message
// prints numbers in that locale; unknown locales get "," and ".".
func (f *Formatter) symbols(cfg FormatConfig) (Symbols, error) {
	if cfg.Symbols != nil {
		s := *cfg.Symbols
		if s.Decimal == "" || s.Group == s.Decimal {
			return Symbols{}, fmt.Errorf("separators %q and %q are ambiguous", s.Group, s.Decimal)
		}
		return s, nil
	}
	if cfg.Locale == "" {
		return defaultSymbols, nil
	}
	if s, ok := f.seps.Load(cfg.Locale); ok {
		return s.(Symbols), nil
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return Symbols{}, fmt.Errorf("locale %q: %w", cfg.Locale, err)
	}
	s := localeSymbols(tag)
	f.seps.Store(cfg.Locale, s)
	return s, nil
}

// localeSymbols extracts the separators from a sample number printed
// in the locale: 1234567.5 renders as 1<g>234<g>567<d>5.
func localeSymbols(tag language.Tag) Symbols {
	sample := message.NewPrinter(tag).Sprintf("%.1f", 1234567.5)
	var runs, seps []string
	for len(sample) > 0 {
		i := strings.IndexFunc(sample, func(r rune) bool { return r < '0' || r > '9' })
		if i < 0 {
			i = len(sample)
		}
		runs = append(runs, sample[:i])
		sample = sample[i:]
		j := strings.IndexFunc(sample, func(r rune) bool { return r >= '0' && r <= '9' })
		if j < 0 {
			j = len(sample)
		}
		if j > 0 {
			seps = append(seps, sample[:j])
		}
		sample = sample[j:]
	}
	if len(runs) != 4 || len(seps) != 3 || runs[3] != "5" {
		return defaultSymbols
	}
	if seps[0] != seps[1] || seps[1] == seps[2] {
		return defaultSymbols
	}
	return Symbols{Group: seps[0], Decimal: seps[2]}
}

func (f *Formatter) layout(cfg FormatConfig, curr Currency) (layout, error) {
	if cfg.Pattern == "" {
		return layout{prefix: currencySign + " ", grouping: true, minInt: 1, minFrac: curr.Scale(), maxFrac: -1}, nil
	}
	return parsePattern(cfg.Pattern)
}

func currencyToken(c Currency, style CurrencyStyle) string {
	switch style {
	case Code:
		return c.Code()
	case Name:
		return c.Name()
	}
	return c.Symbol()
}

// Format renders the amount according to the configuration.
// The output is deterministic for a given amount and configuration.
// Negative amounts are prefixed with "-".
//
// Format returns an error if the pattern, the locale or the separators
// of the configuration are invalid.
func (f *Formatter) Format(a Amount, cfg FormatConfig) (string, error) {
	syms, err := f.symbols(cfg)
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", a, err)
	}
	lay, err := f.layout(cfg, a.Curr())
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", a, err)
	}

	d := a.Decimal()
	if lay.maxFrac >= 0 && d.Scale() > lay.maxFrac {
		d = d.Round(lay.maxFrac, HalfEven)
	}
	if lay.maxFrac >= 0 {
		d = d.Trim(lay.minFrac)
	}
	d = d.Pad(lay.minFrac)

	intDigits, fracDigits, _ := strings.Cut(d.Abs().String(), ".")
	if n := lay.minInt - len(intDigits); n > 0 {
		intDigits = strings.Repeat("0", n) + intDigits
	}

	var b strings.Builder
	if d.IsNeg() {
		b.WriteByte('-')
	}
	token := currencyToken(a.Curr(), cfg.Style)
	b.WriteString(strings.Replace(lay.prefix, currencySign, token, 1))
	for i, r := range intDigits {
		if lay.grouping && i > 0 && (len(intDigits)-i)%3 == 0 {
			b.WriteString(syms.Group)
		}
		b.WriteRune(r)
	}
	if fracDigits != "" {
		b.WriteString(syms.Decimal)
		b.WriteString(fracDigits)
	}
	b.WriteString(strings.Replace(lay.suffix, currencySign, token, 1))
	return b.String(), nil
}

// Parse reads an amount rendered with the configuration.
// The scale of the amount is the number of fraction digits in the text.
//
// Currency symbols shared by several currencies, such as "$", are resolved
// to the currency of the locale when it uses that symbol, and are an error
// otherwise. A pattern without a currency sign parses amounts in the
// currency of the locale.
//
// Parse returns a [*ParseError] if the text does not match the layout,
// names an unknown currency, holds a malformed numeral, or mixes up
// the group and decimal separators.
func (f *Formatter) Parse(text string, cfg FormatConfig) (Amount, error) {
	syms, err := f.symbols(cfg)
	if err != nil {
		return Amount{}, &ParseError{Input: text, Expected: "valid configuration", Err: err}
	}
	lay, err := f.layout(cfg, Currency{})
	if err != nil {
		return Amount{}, &ParseError{Input: text, Expected: "valid pattern", Err: err}
	}

	p := parser{text: text}
	neg := p.consume("-")

	token, hasToken, tokenPos := "", false, 0
	pre1, pre2, inPrefix := strings.Cut(lay.prefix, currencySign)
	if !p.consume(pre1) {
		return Amount{}, p.fail(fmt.Sprintf("%q", pre1), nil)
	}
	if inPrefix {
		end := strings.IndexFunc(p.rest(), func(r rune) bool { return r >= '0' && r <= '9' })
		if end < 0 {
			return Amount{}, p.fail("digits", nil)
		}
		chunk := p.rest()[:end]
		if !strings.HasSuffix(chunk, pre2) || len(chunk) == len(pre2) {
			return Amount{}, p.fail("currency followed by "+fmt.Sprintf("%q", pre2), nil)
		}
		tokenPos = p.pos
		token, hasToken = chunk[:len(chunk)-len(pre2)], true
		p.pos += len(chunk)
	}

	numPos := p.pos
	numeral, err := p.numeral(syms)
	if err != nil {
		return Amount{}, err
	}
	if neg {
		numeral = "-" + numeral
	}

	suf1, suf2, inSuffix := strings.Cut(lay.suffix, currencySign)
	if inSuffix {
		if !p.consume(suf1) {
			return Amount{}, p.fail(fmt.Sprintf("%q", suf1), nil)
		}
		rest := p.rest()
		if !strings.HasSuffix(rest, suf2) || len(rest) == len(suf2) {
			return Amount{}, p.fail("currency followed by "+fmt.Sprintf("%q", suf2), nil)
		}
		tokenPos = p.pos
		token, hasToken = rest[:len(rest)-len(suf2)], true
		p.pos = len(text)
	} else if !p.consume(lay.suffix) || p.pos != len(text) {
		if lay.suffix == "" {
			return Amount{}, p.fail("end of text", nil)
		}
		return Amount{}, p.fail(fmt.Sprintf("%q", lay.suffix), nil)
	}

	d, err := ParseDecimal(numeral)
	if err != nil {
		p.pos = numPos
		return Amount{}, p.fail("numeral", err)
	}
	curr, err := f.resolve(token, hasToken, cfg)
	if err != nil {
		p.pos = tokenPos
		return Amount{}, p.fail(fmt.Sprintf("currency %v", cfg.Style), err)
	}
	return NewAmount(curr, d), nil
}

// resolve maps a currency token to a registered currency.
func (f *Formatter) resolve(token string, hasToken bool, cfg FormatConfig) (Currency, error) {
	if !hasToken {
		return f.reg.ForLocale(cfg.Locale)
	}
	switch cfg.Style {
	case Code:
		return f.reg.Lookup(token)
	case Name:
		for c := range f.reg.All() {
			if strings.EqualFold(c.Name(), token) {
				return c, nil
			}
		}
		return Currency{}, fmt.Errorf("name %q: %w", token, ErrUnknownCurrency)
	}
	if c, err := f.reg.ForLocale(cfg.Locale); err == nil && c.Symbol() == token {
		return c, nil
	}
	switch currs := f.reg.BySymbol(token); len(currs) {
	case 0:
		return Currency{}, fmt.Errorf("symbol %q: %w", token, ErrUnknownCurrency)
	case 1:
		return currs[0], nil
	default:
		return Currency{}, fmt.Errorf("symbol %q is used by %d currencies", token, len(currs))
	}
}

type parser struct {
	text string
	pos  int
}

func (p *parser) rest() string {
	return p.text[p.pos:]
}

func (p *parser) consume(s string) bool {
	if !strings.HasPrefix(p.rest(), s) {
		return false
	}
	p.pos += len(s)
	return true
}

func (p *parser) fail(expected string, err error) error {
	return &ParseError{Input: p.text, Pos: p.pos, Expected: expected, Err: err}
}

// numeral reads grouped digits with an optional fraction and returns them
// in the plain form accepted by [ParseDecimal].
func (p *parser) numeral(syms Symbols) (string, error) {
	start := p.pos
	digits := func() string {
		i := p.pos
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
		return p.text[i:p.pos]
	}
	ambiguous := func() error {
		p.pos = start
		return p.fail("digit groups of three", fmt.Errorf("separator %q is ambiguous", syms.Group))
	}

	groups := []string{digits()}
	if groups[0] == "" {
		return "", p.fail("digit", nil)
	}
	for syms.Group != "" && p.consume(syms.Group) {
		g := digits()
		if len(g) != 3 {
			return "", ambiguous()
		}
		groups = append(groups, g)
	}
	if len(groups) > 1 && len(groups[0]) > 3 {
		return "", ambiguous()
	}
	num := strings.Join(groups, "")

	if p.consume(syms.Decimal) {
		frac := digits()
		if frac == "" {
			return "", p.fail("fraction digit", nil)
		}
		rest := p.rest()
		if strings.HasPrefix(rest, syms.Decimal) || syms.Group != "" && strings.HasPrefix(rest, syms.Group) {
			return "", p.fail("end of numeral", fmt.Errorf("separator after fraction digits is ambiguous"))
		}
		num += "." + frac
	}
	return num, nil
}

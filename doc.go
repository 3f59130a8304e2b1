/*
Package money implements currency-safe monetary values with pluggable
rounding, formatting and exchange-rate conversion.
It combines an arbitrary-precision [Decimal] with a [Currency] taken from
a [Registry] to represent an [Amount].

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Exact arithmetic: nothing is rounded unless a [Rounding] is applied
  - Currency-safe operations that fail instead of mixing currencies
  - Composable [Operator] values for discounts, taxes, roundings and conversions
  - Locale-aware formatting and parsing with [Formatter]
  - Exchange rates from named [RateProvider] implementations, see [ProviderSet]

# Representation

A [Currency] is a plain value holding an ISO 4217 code, a numeric code,
a name, a display symbol and a scale (the number of digits of its minor unit).
Currencies are looked up in a [Registry]; [ISO] returns the registry
of all ISO 4217 currencies.
Nothing in this package reads the ISO registry implicitly: components that
resolve currency codes receive a registry when they are built.

A [Decimal] holds an arbitrary-precision coefficient and a non-negative scale.
An [Amount] keeps the scale of its decimal, so "USD 100" and "USD 100.00"
are different values that compare as numerically equal.
Use [Amount.Equal] to test amounts for equality and [Amount.Cmp] to compare them.

# Operations

Addition, subtraction and multiplication are exact.
Division is exact as well and fails with [ErrInexactDivision] when the quotient
cannot be represented, such as 100 / 3; [Amount.QuoRound] divides with an
explicit [Rounding].
Binary operations on amounts of different currencies fail with [ErrCurrencyMismatch].

# Rounding

A [Rounding] pairs a scale with a [RoundingMode].
The default mode is [HalfEven]; [DefaultRounding] rounds an amount to the
scale of its currency using it.
Rounding is an [Operator] and rounding twice gives the same result as rounding once.

# Operators

[Amount.With] applies an [Operator]. [Discount], [Tax], [Percent], [Rounding],
[ConvertWith] and [ProviderSet.Conversion] are all operators, and [Chain]
composes them from left to right.

# Errors

Every failure is returned as an error scoped to the operation that raised it.
The sentinel errors of this package can be matched with [errors.Is];
formatting and rate lookup failures can be inspected further as [*ParseError]
and [*RateError] with [errors.As].
Functions with the Must prefix panic instead and are intended for
initialization of constants and tests.
*/
package money

/*
Package metal implements amounts of crafting metal, the trading currency
of Team Fortress 2.
It leverages the [decimal] package's capabilities for handling fixed-point
decimal numbers and combines it with a [Denomination] table describing how
traders quote prices.

# Features

  - Immutable metal values, ensuring safe usage across multiple goroutines
  - Conversion between quoted prices and a single canonical unit
  - Arithmetic and comparison operations between metal values and numbers
  - Ranges of metal for uncertain prices, with worst-case arithmetic
  - Conversion of metal to keys using point or ranged key rates

# Representation

Metal is stored as one [Number] of scrap, the canonical unit.
Weapons are worth half a scrap, reclaimed three scrap and refined nine.
Reclaimed and refined are not quoted as plain decimals: the fractional part
counts scrap in steps of 0.33 rec or 0.11 ref, and half a scrap is written
as 0.16 rec or 0.05 ref.
For example, 2.27 ref is 2 refined, 2 scrap and a weapon, or 20.5 scrap.

Views in every denomination are derived from the scrap amount on demand,
rounded to 2 digits after the decimal point.

# Values

The [Value] interface is implemented by [Number], [Metal], [Range] and
[Span]. The functions [Add], [Sub], [Mul] and [Quo] dispatch on the kinds
of both operands and return [ErrMeaninglessOperation] for pairs that make
no sense, such as adding a number to metal.

A [Range] with equal bounds is never constructed: [NewRange] returns the
plain metal instead, so any operation on ranges may return either kind.

# Supported Ranges

Numbers have 19 significant digits, see the Supported Ranges section of the
[decimal] package description.
In addition, a [Number] can be positive or negative infinity, while NaN is
never produced: operations that would produce it fail with
[ErrInvalidAmount].

# Errors

Errors may occur during parsing of numbers, metal and key rates, as well
as during arithmetic operations when certain conditions are not met
(e.g., division by zero, coefficient overflow).
All errors wrap one of the exported sentinel errors.
*/
package metal

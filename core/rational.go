// Package core implements the Senate single-transferable-vote counting
// engine: ballots, the per-candidate vote map, vote history, quotas, the
// count-round state machine, and per-round statistics.
package core

import (
	"math/big"
)

// Int is an arbitrary-precision integer, used for tallies and quotas.
//
// The zero value behaves as 0; construct other values with NewInt or
// IntFromBig.
type Int struct {
	v *big.Int
}

// NewInt returns the Int with value n.
func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// IntFromBig wraps an existing big.Int. The caller must not mutate b
// afterwards.
func IntFromBig(b *big.Int) Int {
	return Int{v: b}
}

func (a Int) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a + b.
func (a Int) Add(b Int) Int {
	return Int{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Int) Sub(b Int) Int {
	return Int{v: new(big.Int).Sub(a.big(), b.big())}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Int) Cmp(b Int) int {
	return a.big().Cmp(b.big())
}

// Equal reports whether a and b have the same value.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

// GreaterOrEqual reports whether a >= b.
func (a Int) GreaterOrEqual(b Int) bool {
	return a.Cmp(b) >= 0
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Int) Sign() int {
	return a.big().Sign()
}

// Frac returns a as an exact fraction.
func (a Int) Frac() Frac {
	return Frac{r: new(big.Rat).SetInt(a.big())}
}

// String renders a in base 10.
func (a Int) String() string {
	return a.big().String()
}

// Frac is an arbitrary-precision rational number, kept in canonical
// (reduced) form at all times, used for transfer values, quotas before
// rounding, and tallies during transfer.
//
// The zero value behaves as 0; construct other values with NewFrac,
// IntFrac or QuotientFrac.
type Frac struct {
	r *big.Rat
}

// NewFrac returns the fraction num/den, reduced to lowest terms. den must
// not be zero.
func NewFrac(num, den int64) Frac {
	return Frac{r: big.NewRat(num, den)}
}

// IntFrac returns n represented as a fraction.
func IntFrac(n Int) Frac {
	return n.Frac()
}

// QuotientFrac returns num/den as an exact fraction. den must be nonzero.
func QuotientFrac(num, den Int) Frac {
	if den.Sign() == 0 {
		panic("core: division by zero fraction")
	}
	r := new(big.Rat).SetFrac(num.big(), den.big())
	return Frac{r: r}
}

func (a Frac) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Add returns a + b.
func (a Frac) Add(b Frac) Frac {
	return Frac{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a - b.
func (a Frac) Sub(b Frac) Frac {
	return Frac{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// MulInt returns a * n, where n is a plain integer weight.
func (a Frac) MulInt(n Int) Frac {
	return Frac{r: new(big.Rat).Mul(a.rat(), n.Frac().rat())}
}

// Div returns a / b. b must be nonzero.
func (a Frac) Div(b Frac) Frac {
	return Frac{r: new(big.Rat).Quo(a.rat(), b.rat())}
}

// Floor returns the largest integer not greater than a.
func (a Frac) Floor() Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(a.rat().Num(), a.rat().Denom(), m)
	return Int{v: q}
}

// Ceil returns the smallest integer not less than a.
func (a Frac) Ceil() Int {
	floor := a.Floor()
	if a.Equal(floor.Frac()) {
		return floor
	}
	return floor.Add(NewInt(1))
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Frac) Cmp(b Frac) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether a and b represent the same value.
func (a Frac) Equal(b Frac) bool {
	return a.Cmp(b) == 0
}

// GreaterOrEqual reports whether a >= b.
func (a Frac) GreaterOrEqual(b Frac) bool {
	return a.Cmp(b) >= 0
}

// Num returns the canonical numerator of a.
func (a Frac) Num() Int {
	return Int{v: new(big.Int).Set(a.rat().Num())}
}

// Den returns the canonical denominator of a.
func (a Frac) Den() Int {
	return Int{v: new(big.Int).Set(a.rat().Denom())}
}

// Key returns a's canonical representation, suitable for use as a map
// key: two fractions compare equal if and only if their Key is equal,
// since big.Rat keeps its numerator/denominator pair reduced on every
// operation.
func (a Frac) Key() string {
	return a.rat().RatString()
}

// String renders a as "num/den", or the integer when den is 1.
func (a Frac) String() string {
	return a.rat().RatString()
}

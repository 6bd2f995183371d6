package cdcl

import "fmt"

// Var is a solver-internal variable index in [1, numVars]. Index 0 is a
// reserved sentinel so that a DIMACS variable maps directly onto a Var.
type Var uint32

// Lit is a packed (variable, polarity) pair: variable = e>>1, polarity
// = (e&1) != 0. The packing guarantees every valid Lit is non-zero,
// so the zero Lit never denotes a real literal.
//
// A positive DIMACS literal n maps to (n<<1)|1; -n maps to n<<1.
// Negating a Lit flips the low bit, which is also why ¬¬l == l.
type Lit uint32

// litFromDIMACS converts a non-zero signed DIMACS literal into a Lit.
func litFromDIMACS(n int) Lit {
	if n == 0 {
		panic("cdcl: zero literal")
	}
	if n < 0 {
		return Lit(uint32(-n) << 1)
	}
	return Lit(uint32(n)<<1 | 1)
}

// toDIMACS converts l back to a signed DIMACS literal.
func (l Lit) toDIMACS() int {
	v := int(l.Var())
	if l.Polarity() {
		return v
	}
	return -v
}

// Var returns the variable this literal refers to.
func (l Lit) Var() Var { return Var(l >> 1) }

// Polarity reports whether l asserts its variable true (as opposed to
// false).
func (l Lit) Polarity() bool { return l&1 != 0 }

// Negate returns ¬l. Negation is an involution: l.Negate().Negate() == l.
func (l Lit) Negate() Lit { return l ^ 1 }

func (l Lit) String() string { return fmt.Sprintf("%d", l.toDIMACS()) }

func newLit(v Var, polarity bool) Lit {
	e := uint32(v) << 1
	if polarity {
		e |= 1
	}
	return Lit(e)
}

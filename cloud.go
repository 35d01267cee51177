// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import (
	"math/big"
	"strconv"
)

// Policy selects how Cloud.IsIntersecting reports a shared member between
// two Clouds.
type Policy int

const (
	// Default reports a true intersection: both Clouds must share at
	// least one member, and the witness is that member's index.
	Default Policy = iota
	// ByCross reports true whenever both operands are nonempty, without
	// checking for an actual shared bit; the witness is each operand's
	// own begin index.
	ByCross
)

// Order is the result of comparing two Clouds (or two Models).
type Order int

const (
	Inc Order = iota // this sorts before the other
	Dec              // this sorts after the other
	Equ              // equal
)

type cloudState int

const (
	cloudEmpty cloudState = iota
	cloudFull
	cloudAllocated
)

// Cloud is a compact, tri-state sparse bitset over the unsigned-integer
// domain. In the Allocated state, bit k of bits represents the absolute
// member begin+k; canonical form requires bit 0 of bits to be set, so
// begin is always itself a present member, and big.Int's own
// normalization keeps the high end trimmed (no explicit "last word
// nonzero" bookkeeping is needed the way it would be with a raw word
// array).
type Cloud struct {
	state cloudState
	begin uint
	bits  *big.Int
}

// EmptyCloud returns the empty Cloud.
func EmptyCloud() Cloud { return Cloud{state: cloudEmpty} }

// FullCloud returns the universal Cloud.
func FullCloud() Cloud { return Cloud{state: cloudFull} }

// SingleCloud returns the Cloud containing exactly i.
func SingleCloud(i uint) Cloud {
	return Cloud{state: cloudAllocated, begin: i, bits: big.NewInt(1)}
}

// boolCloud is the explicit bool-to-Cloud coercion Lift needs for the
// "dark"/"multiverse" kinds: true becomes Full, false becomes Empty.
func boolCloud(b bool) Cloud {
	if b {
		return FullCloud()
	}
	return EmptyCloud()
}

func (c Cloud) IsEmpty() bool     { return c.state == cloudEmpty }
func (c Cloud) IsFull() bool      { return c.state == cloudFull }
func (c Cloud) IsAllocated() bool { return c.state == cloudAllocated }

// Cmp gives Cloud its total order: Empty < Allocated < Full; between two
// Allocated values, begin is compared first, then an approximation of
// size (the bit length of the stored span), then the span itself.
func (c Cloud) Cmp(o Cloud) Order {
	if c.state != o.state {
		if c.state < o.state {
			return Inc
		}
		return Dec
	}
	if c.state != cloudAllocated {
		return Equ
	}
	if c.begin != o.begin {
		if c.begin < o.begin {
			return Inc
		}
		return Dec
	}
	if cl, ol := c.bits.BitLen(), o.bits.BitLen(); cl != ol {
		if cl < ol {
			return Inc
		}
		return Dec
	}
	switch c.bits.Cmp(o.bits) {
	case -1:
		return Inc
	case 1:
		return Dec
	default:
		return Equ
	}
}

func (c Cloud) Equal(o Cloud) bool { return c.Cmp(o) == Equ }

// Union returns c | o.
func (c Cloud) Union(o Cloud) Cloud {
	if c.IsFull() || o.IsFull() {
		return FullCloud()
	}
	if c.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return c
	}
	lo, hi := c, o
	if hi.begin < lo.begin {
		lo, hi = hi, lo
	}
	shifted := new(big.Int).Lsh(hi.bits, hi.begin-lo.begin)
	bits := new(big.Int).Or(lo.bits, shifted)
	return Cloud{state: cloudAllocated, begin: lo.begin, bits: bits}
}

const maxWitness = ^uint(0)

// IsIntersecting reports whether c and o share a member under the given
// policy, and the witness pair the source associates with that fact.
func (c Cloud) IsIntersecting(o Cloud, policy Policy) (at0, at1 uint, ok bool) {
	if c.IsEmpty() || o.IsEmpty() {
		return 0, 0, false
	}
	if c.IsFull() && o.IsFull() {
		return maxWitness, maxWitness, true
	}
	if c.IsFull() {
		return maxWitness, o.begin, true
	}
	if o.IsFull() {
		return c.begin, maxWitness, true
	}
	if policy == ByCross {
		return c.begin, o.begin, true
	}
	lo, hi := c, o
	if hi.begin < lo.begin {
		lo, hi = hi, lo
	}
	shifted := new(big.Int).Lsh(hi.bits, hi.begin-lo.begin)
	inter := new(big.Int).And(lo.bits, shifted)
	if inter.Sign() == 0 {
		return 0, 0, false
	}
	witness := lo.begin + inter.TrailingZeroBits()
	return witness, witness, true
}

// Shift decreases every member by one and reports whether 0 was a member
// beforehand (the "leak"). After Shift, i is a member of c iff i+1 was a
// member of c before the call.
func (c *Cloud) Shift() bool {
	if !c.IsAllocated() {
		return false
	}
	if c.begin != 0 {
		c.begin--
		return false
	}
	// begin == 0: the member 0 leaks out of the unsigned domain. The
	// remaining members, each decremented by one, are exactly bit (k+1)
	// of the current span reindexed to bit k.
	rest := new(big.Int).Rsh(c.bits, 1)
	if rest.Sign() == 0 {
		c.state = cloudEmpty
		c.bits = nil
		c.begin = 0
		return true
	}
	tz := rest.TrailingZeroBits()
	c.begin = tz
	c.bits = new(big.Int).Rsh(rest, tz)
	return true
}

func (c Cloud) String() string {
	switch c.state {
	case cloudEmpty:
		return "{}"
	case cloudFull:
		return "U"
	default:
		return "{begin:" + strconv.FormatUint(uint64(c.begin), 10) + " bits:" + c.bits.Text(2) + "}"
	}
}

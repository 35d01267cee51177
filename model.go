// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

// Model is a conjunction of atomic facts, classified into sixteen kinds
// by the quantifier type of the enclosing scope, the quantifier type of
// the referenced variable, and the membership side. Every slot is
// present; unused kinds hold EmptyCloud.
type Model struct {
	slots [numKinds]Cloud
}

// NewModel returns the empty conjunction (every slot Empty), the
// identity for CombineModels.
func NewModel() Model {
	m := Model{}
	for i := range m.slots {
		m.slots[i] = EmptyCloud()
	}
	return m
}

// NewAtomModel builds the single-atom conjunction for a reference at
// varId "scopes below current" (0 = the current scope's own bound
// variable), with the given membership, scope/variable quantifier
// parities and syntactic negation.
//
// isNeg is the raw syntactic parity; the scope's own parity is XOR'd in
// here, matching the source's "isNeg ^= isNegScope" normalization.
func NewAtomModel(varId uint, isMember, isNegScope, isNegVar, isNeg bool) Model {
	if isNegScope != isNegVar && varId == 0 {
		panic("asc: model: varId must be nonzero when the variable quantifier differs from the scope's")
	}
	isNeg = isNeg != isNegScope

	var slot Kind
	switch {
	case isNegScope:
		if isMember {
			slot = KindV
		} else {
			slot = KindU
		}
	case isNegVar:
		if isMember {
			slot = KindU
		} else {
			slot = KindV
		}
	default:
		if isMember {
			slot = KindA
		} else {
			slot = KindS
		}
	}
	if isNeg {
		slot = slot.Neg()
	}

	m := NewModel()
	m.slots[slot] = SingleCloud(varId)
	return m
}

// CombineModels realizes the conjunction of two model-conjunctions: the
// result's slot is the Cloud union of the two operands' same-named slot,
// for every kind.
func CombineModels(a, b Model) Model {
	var m Model
	for i := Kind(0); i < numKinds; i++ {
		m.slots[i] = a.slots[Kind(i)].Union(b.slots[Kind(i)])
	}
	return m
}

// Compare gives Model its total order: lexicographic Cloud-by-Cloud
// comparison over the sixteen slots in fixed kind order.
func (m Model) Compare(o Model) Order {
	for i := Kind(0); i < numKinds; i++ {
		if c := m.slots[i].Cmp(o.slots[i]); c != Equ {
			return c
		}
	}
	return Equ
}

// IsBefore reports whether m sorts strictly before o.
func (m Model) IsBefore(o Model) bool { return m.Compare(o) == Inc }

func (m Model) Equal(o Model) bool { return m.Compare(o) == Equ }

// conflicts applies the one-directional cross-kind test table from the
// atom-construction/incompatibility design; see DESIGN.md for how
// IsIncompatible composes this into a symmetric relation.
func (m Model) conflicts(o Model) bool {
	cross := func(k0, k1 Kind) bool {
		_, _, ok := m.slots[k0].IsIntersecting(o.slots[k1], ByCross)
		return ok
	}
	block := func(k0, k1 Kind) bool {
		_, _, ok := m.slots[k0].IsIntersecting(o.slots[k1], Default)
		return ok
	}
	contra1 := func(k Kind) bool {
		_, _, ok0 := m.slots[k].IsIntersecting(o.slots[k.Neg()], Default)
		_, _, ok1 := m.slots[k.Neg()].IsIntersecting(o.slots[k], Default)
		return ok0 || ok1
	}
	contra2 := func(k0, k1 Kind) bool {
		_, _, ok0 := m.slots[k0].IsIntersecting(o.slots[k1.Neg()], Default)
		_, _, ok1 := m.slots[k0.Neg()].IsIntersecting(o.slots[k1], Default)
		return ok0 || ok1
	}

	switch {
	case cross(KindM, KindD), cross(KindM, KindV), cross(KindU, KindD), cross(KindU, KindV):
		return true
	case block(KindU, KindV), block(KindU, KindR), block(KindU, KindA),
		block(KindV, KindB), block(KindV, KindS), block(KindS, KindA):
		return true
	case contra1(KindU), contra1(KindV), contra1(KindS), contra1(KindA):
		return true
	case contra2(KindU, KindB), contra2(KindU, KindS), contra2(KindV, KindR), contra2(KindV, KindA):
		return true
	default:
		return false
	}
}

// IsIncompatible reports whether m and o can never hold together: any of
// the fixed cross-kind Cloud intersection tests fires, checked in both
// operand orders so the relation is symmetric regardless of which
// direction the underlying table happens to favor.
func (m Model) IsIncompatible(o Model) bool {
	return m.conflicts(o) || o.conflicts(m)
}

// Lift closes the innermost variable: promotes analysis/synthesis
// evidence into root/branch evidence, clears analysis/synthesis, shifts
// every remaining variable-indexed kind down by one, and materializes
// the dark/multiverse kinds from whatever leaked off kinds U and V.
func (m *Model) Lift() {
	m.slots[KindR] = m.slots[KindR].Union(m.slots[KindA])
	m.slots[KindR.Neg()] = m.slots[KindR.Neg()].Union(m.slots[KindA.Neg()])
	m.slots[KindB] = m.slots[KindB].Union(m.slots[KindS])
	m.slots[KindB.Neg()] = m.slots[KindB.Neg()].Union(m.slots[KindS.Neg()])

	m.slots[KindA] = EmptyCloud()
	m.slots[KindA.Neg()] = EmptyCloud()
	m.slots[KindS] = EmptyCloud()
	m.slots[KindS.Neg()] = EmptyCloud()

	r, nr := m.slots[KindR], m.slots[KindR.Neg()]
	r.Shift()
	nr.Shift()
	m.slots[KindR], m.slots[KindR.Neg()] = r, nr

	b, nb := m.slots[KindB], m.slots[KindB.Neg()]
	b.Shift()
	nb.Shift()
	m.slots[KindB], m.slots[KindB.Neg()] = b, nb

	v, nv := m.slots[KindV], m.slots[KindV.Neg()]
	leakV := v.Shift()
	leakNV := nv.Shift()
	m.slots[KindV], m.slots[KindV.Neg()] = v, nv

	u, nu := m.slots[KindU], m.slots[KindU.Neg()]
	leakU := u.Shift()
	leakNU := nu.Shift()
	m.slots[KindU], m.slots[KindU.Neg()] = u, nu

	m.slots[KindD] = m.slots[KindD].Union(boolCloud(leakV))
	m.slots[KindD.Neg()] = m.slots[KindD.Neg()].Union(boolCloud(leakNV))
	m.slots[KindM] = m.slots[KindM].Union(boolCloud(leakU))
	m.slots[KindM.Neg()] = m.slots[KindM.Neg()].Union(boolCloud(leakNU))
}

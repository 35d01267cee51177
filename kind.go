// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

// Kind names one of the sixteen Cloud slots carried by every Model. There
// are eight base kinds; negation selects the other half of the array via
// Neg, mirroring the "negation offset" of the source's fixed 16-slot array.
//
// The base kinds split into two families. KindA, KindS, KindU and KindV are
// populated directly when an atom is constructed (see NewAtomModel); KindR,
// KindB, KindD and KindM start Empty on every Model and are populated only
// by Lift, which promotes and shifts evidence as the innermost variable's
// scope closes.
type Kind int

const (
	// KindA ("analysis") holds a positively-membered atom whose scope and
	// referenced variable are both existential.
	KindA Kind = iota
	// KindS ("synthesis") is KindA's negated-membership counterpart: same
	// existential/existential pairing, non-membership.
	KindS
	// KindU holds evidence where exactly one of {scope, variable} is
	// universal — see the atom-construction table in NewAtomModel.
	KindU
	// KindV is KindU's sibling slot under the same construction rule.
	KindV
	// KindR ("root") accumulates promoted KindA evidence across scope
	// closures; corresponds to the positive eE/Ee family in the source's
	// kind-meaning table once lifted out of the innermost scope.
	KindR
	// KindB ("branch") accumulates promoted KindS evidence across scope
	// closures.
	KindB
	// KindD ("dark") materializes, via Lift's bool-to-Cloud coercion,
	// whether a KindV fact about the just-closed variable survives as a
	// bare commitment once that variable's own index is gone.
	KindD
	// KindM ("multiverse") is KindD's counterpart for KindU.
	KindM

	numBaseKinds
	numKinds = numBaseKinds * 2
)

// Neg returns the kind's negated-membership counterpart, offsetting into
// the upper half of the fixed 16-slot array.
func (k Kind) Neg() Kind {
	return (k + numBaseKinds) % numKinds
}

// IsNegated reports whether k names a negated slot.
func (k Kind) IsNegated() bool {
	return k >= numBaseKinds
}

func (k Kind) String() string {
	name := kindNames[k%numBaseKinds]
	if k.IsNegated() {
		return "!" + name
	}
	return name
}

var kindNames = [numBaseKinds]string{
	KindA: "A",
	KindS: "S",
	KindU: "U",
	KindV: "V",
	KindR: "R",
	KindB: "B",
	KindD: "D",
	KindM: "M",
}

// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import "github.com/zeebo/errs"

// The three engine-raised error classes. Unlike rudd's *bdd, which
// records one sticky error on the receiver and lets the caller poll it
// via Error/Errored, this engine's errors unwind Solve's call stack the
// moment they're raised, since they can surface from arbitrarily deep
// inside a nested Exists/ForAll/operator callback.
var (
	// IndefinitionClass marks a variable reference that is not in scope.
	IndefinitionClass = errs.Class("indefinition")
	// CircularityClass marks a variable that refers to its own binding
	// scope.
	CircularityClass = errs.Class("circularity")
	// CollapseClass marks a universally-quantified scope combined with a
	// universally-quantified variable reference in the same direction,
	// which produces a degenerate atom.
	CollapseClass = errs.Class("collapse")
)

func newIndefinition(v Var, nVars int) error {
	return IndefinitionClass.New("variable %d is not in scope (nVars=%d)", v, nVars)
}

func newCircularity(v Var) error {
	return CircularityClass.New("variable %d refers to its own binding scope", v)
}

func newCollapse(v Var) error {
	return CollapseClass.New("universal scope combined with universal reference to variable %d collapses", v)
}

// IsIndefinition reports whether err is (or wraps) an Indefinition error.
func IsIndefinition(err error) bool { return IndefinitionClass.Has(err) }

// IsCircularity reports whether err is (or wraps) a Circularity error.
func IsCircularity(err error) bool { return CircularityClass.Has(err) }

// IsCollapse reports whether err is (or wraps) a Collapse error.
func IsCollapse(err error) bool { return CollapseClass.Has(err) }

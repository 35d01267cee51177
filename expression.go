// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import "sort"

// Expression is a disjunctive-normal-form set of Models, kept sorted by
// Model.Compare and deduplicated on insertion. The empty Expression
// denotes the unsatisfiable formula at its scope.
type Expression struct {
	models []Model
}

// NewExpression returns the empty expression.
func NewExpression() *Expression { return &Expression{} }

// NewAtomExpression returns the singleton expression containing m.
func NewAtomExpression(m Model) *Expression {
	return &Expression{models: []Model{m}}
}

// Models returns the expression's Models in sorted order. The returned
// slice must not be mutated by the caller.
func (e *Expression) Models() []Model { return e.models }

// Empty reports whether e denotes the unsatisfiable formula.
func (e *Expression) Empty() bool { return len(e.models) == 0 }

// Clear empties e in place.
func (e *Expression) Clear() { e.models = e.models[:0] }

// Insert adds m to e, preserving sort order and skipping m if an equal
// Model is already present.
func (e *Expression) Insert(m Model) {
	i := sort.Search(len(e.models), func(i int) bool {
		return e.models[i].Compare(m) != Inc
	})
	if i < len(e.models) && e.models[i].Equal(m) {
		return
	}
	e.models = append(e.models, Model{})
	copy(e.models[i+1:], e.models[i:])
	e.models[i] = m
}

// InsertAll inserts every Model of o into e.
func (e *Expression) InsertAll(o *Expression) {
	for _, m := range o.Models() {
		e.Insert(m)
	}
}

// Equal reports whether e and o hold the same set of Models.
func (e *Expression) Equal(o *Expression) bool {
	if len(e.models) != len(o.models) {
		return false
	}
	for i, m := range e.models {
		if !m.Equal(o.models[i]) {
			return false
		}
	}
	return true
}

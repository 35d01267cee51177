// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import "testing"

func TestNewExpressionEmpty(t *testing.T) {
	e := NewExpression()
	if !e.Empty() {
		t.Fatalf("NewExpression must be empty")
	}
	if len(e.Models()) != 0 {
		t.Fatalf("NewExpression must hold no models")
	}
}

func TestNewAtomExpressionSingleton(t *testing.T) {
	m := NewAtomModel(1, true, false, false, false)
	e := NewAtomExpression(m)
	if e.Empty() {
		t.Fatalf("NewAtomExpression must not be empty")
	}
	if len(e.Models()) != 1 || !e.Models()[0].Equal(m) {
		t.Fatalf("NewAtomExpression must hold exactly m")
	}
}

func TestInsertDeduplicates(t *testing.T) {
	m := NewAtomModel(1, true, false, false, false)
	e := NewExpression()
	e.Insert(m)
	e.Insert(m)
	if len(e.Models()) != 1 {
		t.Fatalf("Insert must not duplicate an equal Model, got %d models", len(e.Models()))
	}
}

func TestInsertKeepsSortOrder(t *testing.T) {
	a := NewAtomModel(1, true, false, false, false)
	b := NewAtomModel(2, true, false, false, false)
	e := NewExpression()
	e.Insert(b)
	e.Insert(a)
	models := e.Models()
	if len(models) != 2 {
		t.Fatalf("expected 2 distinct models, got %d", len(models))
	}
	if models[0].Compare(models[1]) != Inc {
		t.Fatalf("Insert must maintain sorted order")
	}
}

func TestInsertAllUnionsTwoExpressions(t *testing.T) {
	a := NewAtomModel(1, true, false, false, false)
	b := NewAtomModel(2, true, false, false, false)
	e0 := NewAtomExpression(a)
	e1 := NewAtomExpression(b)
	e0.InsertAll(e1)
	if len(e0.Models()) != 2 {
		t.Fatalf("InsertAll must union in the other expression's models, got %d", len(e0.Models()))
	}
}

func TestClearEmptiesInPlace(t *testing.T) {
	m := NewAtomModel(1, true, false, false, false)
	e := NewAtomExpression(m)
	e.Clear()
	if !e.Empty() {
		t.Fatalf("Clear must empty the expression")
	}
}

func TestEqualComparesModelSets(t *testing.T) {
	a := NewAtomModel(1, true, false, false, false)
	e0 := NewAtomExpression(a)
	e1 := NewAtomExpression(a)
	if !e0.Equal(e1) {
		t.Fatalf("expressions with the same singleton model must be Equal")
	}
	e1.Insert(NewAtomModel(2, true, false, false, false))
	if e0.Equal(e1) {
		t.Fatalf("expressions with different model sets must not be Equal")
	}
}

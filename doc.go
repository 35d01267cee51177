// Copyright (c) 2026 The asc Authors
//
// MIT License

/*
Package asc defines a decision procedure for a small fragment of
first-order logic over a single binary membership predicate x<y, read
"x is a member of y", with existential and universal quantifiers,
negation and the Boolean connectives.

A client builds a closed formula incrementally against a *Calculator by
calling Atom, the operator helpers (Or, And, Not, Imp, Bimp, ...), Exists
and ForAll, each of which takes the sub-formula as a callback parameterized
over the variable handles its enclosing scopes have bound so far. Solve
drives the callback, decides satisfiability, and reports the result as an
Expression — a disjunctive-normal-form set of Models, each a conjunction of
atoms.

Basics

A Model classifies every atom it holds into one of sixteen kinds by the
quantifier type of its enclosing scope, the quantifier type of the
variable it references, and which side of < that variable is on. Each
kind holds a Cloud, a compact sparse bitset of the variable indices
involved. Resolving a Boolean operator combines two Expressions pairwise
across every pair of their Models; resolving a quantifier scope closure
eliminates the innermost variable by folding some kinds into others and
shifting every remaining variable index down by one.

Concurrency

Both the pairwise combination and the per-scope elimination are
dispatched to a small, bounded pool of on-demand workers, synchronized by
a single mutex and condition variable rather than a persistent
goroutine-per-worker pool; a phase never starts until the previous one
has fully drained. The calculator itself is not safe for concurrent use
by more than one driver goroutine — the pool is an implementation detail
of each public operation, not a concurrent API.

Errors

Three error kinds — Indefinition, Circularity and Collapse — indicate a
malformed formula (an out-of-scope or self-referential variable, or a
degenerate universal/universal atom) and unwind Solve immediately. A
client may additionally register its own error with Check at the current
syntactic depth; it fires if and when the sub-formula at that depth
resolves to the unsatisfiable (empty) expression.
*/
package asc

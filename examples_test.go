// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import "fmt"

// eqByMembership builds "for every z, x is a member of z iff y is a
// member of z" — the membership side of Leibniz equality between two
// previously bound variables, adapted from original_source/main.cpp's
// eq helper.
func eqByMembership(c *Calculator, x, y Var) {
	c.ForAll(func(c *Calculator, z Var) {
		c.Bimp(
			func(c *Calculator) { c.Atom(x, true) },
			func(c *Calculator) { c.Atom(y, true) },
		)
	})
}

// Example_leibnizEquality mirrors original_source/main.cpp's driver: it
// relates two distinct existentially-bound variables, x and y, by
// asserting both eqByMembership(x, y) and that an outer witness w is a
// member of y, which is satisfiable precisely because Bimp lets a
// model where x and y agree on membership stand alongside w's
// membership in y.
func Example_leibnizEquality() {
	result, err := New().Solve(func(c *Calculator) {
		c.Exists(func(c *Calculator, w Var) {
			c.Exists(func(c *Calculator, x Var) {
				c.Exists(func(c *Calculator, y Var) {
					c.And(
						func(c *Calculator) { eqByMembership(c, x, y) },
						func(c *Calculator) { c.Atom(w, true) },
					)
				})
			})
		})
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("satisfiable:", !result.Empty())
	// Output:
	// satisfiable: true
}

// Example_contradiction shows a closed formula asserting a variable's
// membership fact alongside its own negation, which must resolve to the
// unsatisfiable expression.
func Example_contradiction() {
	result, err := New().Solve(func(c *Calculator) {
		c.Exists(func(c *Calculator, x Var) {
			c.Exists(func(c *Calculator, y Var) {
				c.And(
					func(c *Calculator) { c.Atom(x, true) },
					func(c *Calculator) { c.Not(func(c *Calculator) { c.Atom(x, true) }) },
				)
			})
		})
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("satisfiable:", !result.Empty())
	// Output:
	// satisfiable: false
}

// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import "github.com/zeebo/mon"

// Var is a handle to a variable bound by Exists or ForAll: the absolute
// scope depth at which it was created (1-based, counting from the
// outermost scope). A Var is only meaningful to the Calculator that
// created it.
type Var int

// depthKey identifies a syntactic depth in the scope/operator stack, the
// granularity at which Check registers a user error.
type depthKey struct {
	nVars int
	nOps  int
}

// Calculator drives the construction of a closed formula and decides
// its satisfiability. The zero value is not usable; construct one with
// New.
type Calculator struct {
	exprs []*Expression
	ops   []int
	vars  []bool

	checks map[depthKey]error

	pool   *workerPool
	result *Expression

	log *Logger
}

// New returns a Calculator ready to build a formula from scratch.
func New(opts ...Option) *Calculator {
	cfg := newCalcConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Calculator{
		ops:    []int{0, 0},
		vars:   []bool{false},
		checks: make(map[depthKey]error),
		pool:   newWorkerPool(cfg.workers),
		result: NewExpression(),
		log:    cfg.logger,
	}
}

// Solve runs build, which must issue a single well-formed closed formula
// against c via Atom/operator helpers/Exists/ForAll/Check, and returns
// the resulting root Expression. A non-nil error is one of
// Indefinition, Circularity, Collapse, or a user error installed with
// Check; result is nil whenever err is non-nil.
func (c *Calculator) Solve(build func(c *Calculator)) (result *Expression, err error) {
	defer mon.Start().Stop(&err)
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
				result = nil
				return
			}
			panic(r)
		}
	}()
	build(c)
	return c.top(), nil
}

// ---- scope/operator stack plumbing ----

func (c *Calculator) nVars() int { return len(c.vars) }
func (c *Calculator) nOps() int  { return c.ops[len(c.ops)-1] }

func (c *Calculator) isNegSyn() bool { return c.ops[len(c.ops)-1]&1 == 1 }
func (c *Calculator) isNegSem() bool { return c.vars[len(c.vars)-1] }
func (c *Calculator) isNeg() bool    { return c.isNegSyn() != c.isNegSem() }

func (c *Calculator) push(nOperators int) { c.ops[len(c.ops)-1] += nOperators }

func (c *Calculator) top() *Expression    { return c.exprs[len(c.exprs)-1] }
func (c *Calculator) subTop() *Expression { return c.exprs[len(c.exprs)-2] }
func (c *Calculator) pop()                { c.exprs = c.exprs[:len(c.exprs)-1] }

// pushExpr pushes e onto the expression stack and resolves as much of
// the stack as is now available.
func (c *Calculator) pushExpr(e *Expression) {
	c.exprs = append(c.exprs, e)
	c.resolve()
}

// take clears the current top expression and swaps in the pool's shared
// result (which is reset to empty as a side effect), then fires any
// Check registered at the depth that just resolved.
func (c *Calculator) take() {
	top := c.top()
	top.Clear()
	top.models, c.result.models = c.result.models, nil

	key := depthKey{nVars: c.nVars(), nOps: c.nOps()}
	if registered, ok := c.checks[key]; ok {
		delete(c.checks, key)
		if top.Empty() {
			c.log.LogCheckFired(key.nVars, key.nOps, registered)
			c.pop()
			panic(registered)
		}
	}
}

// resolve runs after every push of a sub-expression: it interleaves
// operator folding (NOR-dispatch vs. plain disjunction) with scope
// closure (dispatching lifts), repeating until a full pass makes no
// progress.
func (c *Calculator) resolve() {
	for progress := true; progress; {
		progress = false

		for c.nOps() > 0 && len(c.exprs) > 1 {
			progress = true
			neg := c.isNeg()

			if neg {
				sub, top := c.subTop(), c.top()
				c.log.LogCombine(len(sub.Models()), len(top.Models()))
				for _, m0 := range sub.Models() {
					for _, m1 := range top.Models() {
						m0, m1 := m0, m1
						c.pool.Dispatch(func() {
							if !m0.IsIncompatible(m1) {
								combined := CombineModels(m0, m1)
								c.pool.Lock()
								c.result.Insert(combined)
								c.pool.Unlock()
							}
						})
					}
				}
				c.pool.Join()
				c.ops[len(c.ops)-1]--
				c.pop()
				c.take()
			} else {
				sub, top := c.subTop(), c.top()
				sub.InsertAll(top)
				c.ops[len(c.ops)-1]--
				c.pop()
			}
		}

		for c.nOps() == 0 && c.nVars() > 1 && len(c.exprs) > 0 {
			progress = true
			top := c.top()
			c.log.LogLift(len(top.Models()))
			for _, m := range top.Models() {
				m := m
				c.pool.Dispatch(func() {
					lifted := m
					lifted.Lift()
					c.pool.Lock()
					c.result.Insert(lifted)
					c.pool.Unlock()
				})
			}
			c.pool.Join()
			c.take()
			c.ops = c.ops[:len(c.ops)-1]
			c.vars = c.vars[:len(c.vars)-1]
			c.log.LogScopeClose(c.nVars())
		}
	}
}

// ---- public operations ----

// Atom binds the variable handle v, taken against the current (innermost)
// scope, as an atomic formula; the handle's absolute depth is converted
// to "scopes below current" form here. It panics with Indefinition if v refers to a scope
// that does not exist, Circularity if v refers to its own binding scope,
// and Collapse if both the enclosing scope and the referenced variable
// are universally-negated.
func (c *Calculator) Atom(v Var, isMember bool) {
	nVars := c.nVars()
	if int(v) < 1 || int(v) > nVars {
		panic(newIndefinition(v, nVars))
	}
	if int(v) == nVars {
		panic(newCircularity(v))
	}
	isNegScope := c.isNegSem()
	isNegVar := c.vars[int(v)-1]
	if isNegScope && isNegVar {
		panic(newCollapse(v))
	}
	relVarId := uint(nVars - int(v))
	m := NewAtomModel(relVarId, isMember, isNegScope, isNegVar, c.isNegSyn())
	c.pushExpr(NewAtomExpression(m))
}

// OpNor increments the current scope's operator counter, then evaluates
// e0 then e1.
func (c *Calculator) OpNor(e0, e1 func(c *Calculator)) {
	c.push(1)
	e0(c)
	e1(c)
}

// Not is the derived operator opNot(e) = opNor(e, push_top_again).
func (c *Calculator) Not(e func(c *Calculator)) {
	c.OpNor(e, func(c *Calculator) { c.pushExpr(c.top()) })
}

// Or is the derived operator opOr = opNot ∘ opNor.
func (c *Calculator) Or(e0, e1 func(c *Calculator)) {
	c.Not(func(c *Calculator) { c.OpNor(e0, e1) })
}

// And is the derived operator opAnd(e0,e1) = opNor(opNot(e0), opNot(e1)).
func (c *Calculator) And(e0, e1 func(c *Calculator)) {
	c.OpNor(
		func(c *Calculator) { c.Not(e0) },
		func(c *Calculator) { c.Not(e1) },
	)
}

// Nand is the derived operator opNand = opNot ∘ opAnd.
func (c *Calculator) Nand(e0, e1 func(c *Calculator)) {
	c.Not(func(c *Calculator) { c.And(e0, e1) })
}

// Imp is the derived operator opImp(e0,e1) = opOr(opNot(e0), e1).
func (c *Calculator) Imp(e0, e1 func(c *Calculator)) {
	c.Or(func(c *Calculator) { c.Not(e0) }, e1)
}

// Bimp is the derived operator opBimp: it adds 3 to the current scope's
// operator counter, evaluates e0 then e1, snapshots the resulting top,
// re-evaluates e0 and e1 with an extra push() between them, and finally
// pushes the snapshot. The snapshot must be a copy, not an alias: the
// very next statement re-enters resolve() and mutates whatever sits at
// top() in place.
func (c *Calculator) Bimp(e0, e1 func(c *Calculator)) {
	c.push(3)
	e0(c)
	e1(c)
	nor := &Expression{models: append([]Model(nil), c.top().Models()...)}
	e0(c)
	c.push(1)
	e1(c)
	c.pushExpr(nor)
}

// Exists allocates a new variable (pushing a fresh scope frame) and
// calls p with its handle.
func (c *Calculator) Exists(p func(c *Calculator, v Var)) {
	c.vars = append(c.vars, c.isNeg())
	c.ops = append(c.ops, 0)
	c.log.LogScopeOpen(c.nVars())
	v := Var(c.nVars())
	p(c, v)
}

// ForAll is the derived quantifier forAll(p) = opNot(exists(v =>
// opNot(p(v)))).
func (c *Calculator) ForAll(p func(c *Calculator, v Var)) {
	c.Not(func(c *Calculator) {
		c.Exists(func(c *Calculator, v Var) {
			c.Not(func(c *Calculator) { p(c, v) })
		})
	})
}

// Check registers err to be raised if the expression at the current
// syntactic depth later resolves to the unsatisfiable (empty) set.
func (c *Calculator) Check(err error) {
	c.checks[depthKey{nVars: c.nVars(), nOps: c.nOps()}] = err
}

// Package main demonstrates basic fixplex usage patterns.
//
// This example shows how to install rows, bounds and inequalities on a
// solver over 8-bit arithmetic and how to read back models, unsat cores and
// implied equalities.
package main

import (
	"context"
	"fmt"

	"github.com/gitrdm/fixplex/pkg/fixplex"
)

func main() {
	fmt.Println("=== fixplex Examples ===")
	fmt.Println()

	simplePivot()
	chainConflict()
	fixedCollision()
}

// simplePivot solves s + x - y = 0 under interval bounds on x and y.
func simplePivot() {
	fmt.Println("1. Simple pivot:")

	s := fixplex.NewSolver(fixplex.Uint8())
	const (
		slack = 0
		x     = 1
		y     = 2
	)
	if err := s.AddRow(slack, []fixplex.Term{{Var: slack, Coeff: 1}, {Var: x, Coeff: 1}, {Var: y, Coeff: 255}}); err != nil {
		panic(err)
	}
	s.SetBounds(x, 10, 20, 1)
	s.SetBounds(y, 15, 25, 2)

	res := s.MakeFeasible(context.Background())
	fmt.Printf("   result = %s, x = %d, y = %d, s = %d\n",
		res, s.Value(x), s.Value(y), s.Value(slack))
}

// chainConflict shows an inequality cycle x <= y <= z < x turning into an
// unsat core of the three inequality tags.
func chainConflict() {
	fmt.Println("2. Chain conflict:")

	s := fixplex.NewSolver(fixplex.Uint8())
	const x, y, z = 0, 1, 2
	s.AddIneq(x, y, 1, false)
	s.AddIneq(y, z, 2, false)
	s.AddIneq(z, x, 3, true)

	res := s.MakeFeasible(context.Background())
	fmt.Printf("   result = %s, core = %v\n", res, s.UnsatCore())
}

// fixedCollision fixes two variables to the same value and reads the
// implied equality.
func fixedCollision() {
	fmt.Println("3. Fixed collision:")

	s := fixplex.NewSolver(fixplex.Uint8())
	s.SetValue(0, 42, 1)
	s.SetValue(1, 42, 2)

	for _, eq := range s.VarEqs() {
		fmt.Printf("   implied v%d = v%d\n", eq.X, eq.Y)
	}
}

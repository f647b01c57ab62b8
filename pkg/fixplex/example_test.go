package fixplex_test

import (
	"context"
	"fmt"

	"github.com/gitrdm/fixplex/pkg/fixplex"
)

// ExampleSolver installs one equality row with interval bounds and reads
// back the satisfying assignment.
func ExampleSolver() {
	s := fixplex.NewSolver(fixplex.Uint8())
	const slack, x, y = 0, 1, 2

	// slack + x - y = 0
	if err := s.AddRow(slack, []fixplex.Term{{Var: slack, Coeff: 1}, {Var: x, Coeff: 1}, {Var: y, Coeff: 255}}); err != nil {
		panic(err)
	}
	s.SetBounds(x, 10, 20, 1)
	s.SetBounds(y, 15, 25, 2)

	res := s.MakeFeasible(context.Background())
	fmt.Println(res, s.Value(x), s.Value(y), s.Value(slack))
	// Output: sat 10 15 5
}

// ExampleSolver_unsatCore shows an inequality cycle being reported as a
// conflict; UnsatCore then holds the caller-supplied dependency tags.
func ExampleSolver_unsatCore() {
	s := fixplex.NewSolver(fixplex.Uint8())
	const x, y, z = 0, 1, 2

	s.AddIneq(x, y, 1, false)
	s.AddIneq(y, z, 2, false)
	s.AddIneq(z, x, 3, true)

	fmt.Println(s.MakeFeasible(context.Background()))
	// Output: unsat
}

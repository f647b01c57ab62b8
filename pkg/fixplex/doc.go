// Package fixplex implements a fixed-precision simplex tableau over machine
// unsigned integers, i.e. linear arithmetic modulo 2^N.
//
// The solver maintains a sparse tableau of equalities together with
// per-variable modular interval bounds and pairwise inequalities, and decides
// whether an assignment modulo 2^N exists that satisfies all of them.
// Pivoting follows the Olm-Seidl parity condition: a variable may only be
// pivoted in when its coefficient has the minimal number of trailing zeros in
// its column, which keeps row elimination lossless. When a row addition
// forces a lossy elimination the solver continues but reports the addition as
// approximate, leaving completion of the search to an outer layer.
//
// Bounds carry dependency sets. When the solver answers Unsat, the
// dependencies of the bounds participating in the conflict are linearised
// into an unsatisfiability core of caller-supplied identifiers. All
// state-changing operations are trailed and can be undone with Push/Pop.
//
// A Solver instance is not safe for concurrent use; serialise access
// externally. Independent instances can be solved concurrently with SolveAll.
package fixplex

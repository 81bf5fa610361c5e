/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lattice decides equivalence, entailment and satisfiability of
// boolean lattice formulas.
//
// A formula is a finite tree of variables, the two bound constants ⊤ and ⊥,
// and the join (or-like) and meet (and-like) connectives, built with the
// Var, Constant, Join and Meet constructors. Terms can be any comparable
// type; equality is the only operation the package needs on them.
//
// The predicates are decided by brute force: a depth-first search enumerates
// every assignment of the free variables, carrying one assignment map per
// branch. A variable already bound on a branch keeps its value, an unbound
// one forks the branch in two. Join short-circuits when its left side is
// true on a branch and meet when its left side is false, so variables that
// cannot change the outcome of a branch never fork it. This is exponential
// in the number of distinct variables a branch forces open, which is fine
// for the handful of terms real license comparisons involve; it is not a
// general-purpose SAT solver.
package lattice

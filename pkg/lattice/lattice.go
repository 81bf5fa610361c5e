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

package lattice

import "fmt"

// A Formula is a boolean lattice formula over terms of type T. Formulas are
// immutable trees; build them once with Var, Constant, Join and Meet, and
// compare them with Equivalent, Preorder or Satisfiable.
type Formula[T comparable] interface {
	fmt.Stringer
	node()
}

type variable[T comparable] struct {
	term T
}

type constant[T comparable] struct {
	value bool
}

type join[T comparable] struct {
	left, right Formula[T]
}

type meet[T comparable] struct {
	left, right Formula[T]
}

func (variable[T]) node() {}
func (constant[T]) node() {}
func (join[T]) node()     {}
func (meet[T]) node()     {}

// Var generates a variable formula for the given term.
func Var[T comparable](term T) Formula[T] {
	return variable[T]{term: term}
}

// Constant generates one of the two bounds of the lattice: the top ⊤ for
// true, the bottom ⊥ for false.
func Constant[T comparable](value bool) Formula[T] {
	return constant[T]{value: value}
}

// Join generates the least upper bound (logical or) of two subformulas.
func Join[T comparable](left, right Formula[T]) Formula[T] {
	return join[T]{left: left, right: right}
}

// Meet generates the greatest lower bound (logical and) of two subformulas.
func Meet[T comparable](left, right Formula[T]) Formula[T] {
	return meet[T]{left: left, right: right}
}

func (v variable[T]) String() string {
	return fmt.Sprintf("%v", v.term)
}

func (c constant[T]) String() string {
	if c.value {
		return "⊤"
	}
	return "⊥"
}

func (j join[T]) String() string {
	return "join(" + j.left.String() + ", " + j.right.String() + ")"
}

func (m meet[T]) String() string {
	return "meet(" + m.left.String() + ", " + m.right.String() + ")"
}

// Dual returns the De Morgan dual of f: joins and meets swapped, constants
// negated, variables untouched.
func Dual[T comparable](f Formula[T]) Formula[T] {
	switch f := f.(type) {
	case variable[T]:
		return f
	case constant[T]:
		return constant[T]{value: !f.value}
	case join[T]:
		return meet[T]{left: Dual(f.left), right: Dual(f.right)}
	case meet[T]:
		return join[T]{left: Dual(f.left), right: Dual(f.right)}
	default:
		panic("lattice: invalid formula type")
	}
}

// FreeVars lists the term of every variable in f, left to right, duplicates
// included. Callers that need a set must deduplicate.
func FreeVars[T comparable](f Formula[T]) []T {
	return appendFreeVars(nil, f)
}

func appendFreeVars[T comparable](terms []T, f Formula[T]) []T {
	switch f := f.(type) {
	case variable[T]:
		return append(terms, f.term)
	case constant[T]:
		return terms
	case join[T]:
		return appendFreeVars(appendFreeVars(terms, f.left), f.right)
	case meet[T]:
		return appendFreeVars(appendFreeVars(terms, f.left), f.right)
	default:
		panic("lattice: invalid formula type")
	}
}

// Substitute rewrites f, replacing every variable by the formula sub returns
// for its term and keeping constants, joins and meets otherwise intact.
func Substitute[T comparable](f Formula[T], sub func(T) Formula[T]) Formula[T] {
	switch f := f.(type) {
	case variable[T]:
		return sub(f.term)
	case constant[T]:
		return f
	case join[T]:
		return join[T]{left: Substitute(f.left, sub), right: Substitute(f.right, sub)}
	case meet[T]:
		return meet[T]{left: Substitute(f.left, sub), right: Substitute(f.right, sub)}
	default:
		panic("lattice: invalid formula type")
	}
}

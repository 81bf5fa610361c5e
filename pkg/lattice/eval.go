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

// A model maps the variable terms bound so far on one search branch to their
// boolean value. Sibling branches never share a model: extending one copies.
type model[T comparable] map[T]bool

func (m model[T]) extend(term T, value bool) model[T] {
	next := make(model[T], len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	next[term] = value
	return next
}

// A branch is one complete path of the nondeterministic evaluation: the
// model accumulated along it and the value the formula took under it.
type branch[T comparable] struct {
	model model[T]
	value bool
}

// eval enumerates every evaluation branch of f starting from the bindings in
// m. A variable already bound on the branch keeps its value; an unbound one
// forks the branch in two. Join short-circuits on a true left value and meet
// on a false one, so its right side is not evaluated on such branches and
// variables only occurring there never fork.
func eval[T comparable](f Formula[T], m model[T]) []branch[T] {
	switch f := f.(type) {
	case constant[T]:
		return []branch[T]{{model: m, value: f.value}}
	case variable[T]:
		if value, bound := m[f.term]; bound {
			return []branch[T]{{model: m, value: value}}
		}
		return []branch[T]{
			{model: m.extend(f.term, true), value: true},
			{model: m.extend(f.term, false), value: false},
		}
	case join[T]:
		var out []branch[T]
		for _, left := range eval(f.left, m) {
			if left.value {
				out = append(out, left)
				continue
			}
			out = append(out, eval(f.right, left.model)...)
		}
		return out
	case meet[T]:
		var out []branch[T]
		for _, left := range eval(f.left, m) {
			if !left.value {
				out = append(out, left)
				continue
			}
			out = append(out, eval(f.right, left.model)...)
		}
		return out
	default:
		panic("lattice: invalid formula type")
	}
}

// Equivalent reports whether a and b take the same value under every
// assignment of the variables free in either of them. Both formulas are
// evaluated along the same branch, so a variable they share is bound to one
// consistent value. The enumeration is exhaustive: equivalence is a claim
// about all assignments and cannot stop at the first agreeing pair.
func Equivalent[T comparable](a, b Formula[T]) bool {
	for _, x := range eval(a, model[T]{}) {
		for _, y := range eval(b, x.model) {
			if x.value != y.value {
				return false
			}
		}
	}
	return true
}

// Preorder reports a ≤ b, read "a entails b": a∨b ≡ b, the join-absorption
// test. It is deliberately a corollary of Equivalent so the two predicates
// can never disagree.
func Preorder[T comparable](a, b Formula[T]) bool {
	return Equivalent(Join(a, b), b)
}

// Satisfiable reports whether some assignment makes f true. It stops at the
// first branch that does.
func Satisfiable[T comparable](f Formula[T]) bool {
	for _, br := range eval(f, model[T]{}) {
		if br.value {
			return true
		}
	}
	return false
}

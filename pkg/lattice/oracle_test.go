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

import (
	"math/rand"
	"testing"

	"github.com/crillab/gophersat/bf"
	"github.com/stretchr/testify/assert"
)

// The brute-force evaluator is cross-checked against the gophersat solver:
// two formulas are equivalent exactly when their exclusive or is
// unsatisfiable, and a ≤ b exactly when a∧¬b is unsatisfiable. The random
// formulas stay constant-free because bf normalizes constant-only
// connectives away before solving.

func toBF(f Formula[string]) bf.Formula {
	switch f := f.(type) {
	case variable[string]:
		return bf.Var(f.term)
	case constant[string]:
		if f.value {
			return bf.True
		}
		return bf.False
	case join[string]:
		return bf.Or(toBF(f.left), toBF(f.right))
	case meet[string]:
		return bf.And(toBF(f.left), toBF(f.right))
	default:
		panic("lattice: invalid formula type")
	}
}

func randomFormula(r *rand.Rand, depth int) Formula[string] {
	terms := []string{"a", "b", "c", "d"}
	if depth == 0 || r.Intn(4) == 0 {
		return Var(terms[r.Intn(len(terms))])
	}
	left := randomFormula(r, depth-1)
	right := randomFormula(r, depth-1)
	if r.Intn(2) == 0 {
		return Join(left, right)
	}
	return Meet(left, right)
}

func TestEquivalentAgainstSolver(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randomFormula(r, 3)
		b := randomFormula(r, 3)
		want := bf.Solve(bf.Xor(toBF(a), toBF(b))) == nil
		assert.Equal(t, want, Equivalent(a, b), "formulas %s and %s", a, b)
	}
}

func TestPreorderAgainstSolver(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := randomFormula(r, 3)
		b := randomFormula(r, 3)
		want := bf.Solve(bf.And(toBF(a), bf.Not(toBF(b)))) == nil
		assert.Equal(t, want, Preorder(a, b), "formulas %s and %s", a, b)
	}
}

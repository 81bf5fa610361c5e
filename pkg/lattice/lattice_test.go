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
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	x = Var("x")
	y = Var("y")
	z = Var("z")
)

// sampleFormulas covers every node kind in assorted shapes; the algebraic
// property tests quantify over it.
func sampleFormulas() []Formula[string] {
	return []Formula[string]{
		x,
		y,
		Constant[string](true),
		Constant[string](false),
		Join(x, y),
		Meet(x, y),
		Join(x, Constant[string](false)),
		Meet(x, Constant[string](true)),
		Join(Meet(x, y), z),
		Meet(Join(x, y), Join(y, z)),
		Join(x, Join(y, Join(z, x))),
		Meet(Meet(x, x), Join(x, Meet(y, Constant[string](false)))),
	}
}

func TestEquivalent(t *testing.T) {
	for _, tcase := range []struct {
		name string
		a, b Formula[string]
		want bool
	}{
		{name: "meet commutes", a: Meet(x, y), b: Meet(y, x), want: true},
		{name: "join commutes", a: Join(x, y), b: Join(y, x), want: true},
		{name: "meet idempotent", a: x, b: Meet(x, x), want: true},
		{name: "join idempotent", a: x, b: Join(x, x), want: true},
		{name: "distinct vars differ", a: Meet(x, y), b: Meet(y, y), want: false},
		{name: "var is not top", a: x, b: Constant[string](true), want: false},
		{name: "join absorbs top", a: Join(x, Constant[string](true)), b: Constant[string](true), want: true},
		{name: "meet absorbs bottom", a: Meet(x, Constant[string](false)), b: Constant[string](false), want: true},
		{name: "join unit", a: Join(x, Constant[string](false)), b: x, want: true},
		{name: "meet unit", a: Meet(x, Constant[string](true)), b: x, want: true},
		{name: "absorption law", a: Join(x, Meet(x, y)), b: x, want: true},
		{name: "distribution", a: Meet(x, Join(y, z)), b: Join(Meet(x, y), Meet(x, z)), want: true},
		{name: "constants differ", a: Constant[string](true), b: Constant[string](false), want: false},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			assert.Equal(t, tcase.want, Equivalent(tcase.a, tcase.b))
			assert.Equal(t, tcase.want, Equivalent(tcase.b, tcase.a))
		})
	}
}

func TestEquivalentIsReflexive(t *testing.T) {
	for _, f := range sampleFormulas() {
		assert.True(t, Equivalent(f, f), "formula %s", f)
		assert.True(t, Equivalent(f, Meet(f, f)), "formula %s", f)
		assert.True(t, Equivalent(f, Join(f, f)), "formula %s", f)
	}
}

func TestPreorder(t *testing.T) {
	for _, tcase := range []struct {
		name string
		a, b Formula[string]
		want bool
	}{
		{name: "meet below its factor", a: Meet(x, y), b: x, want: true},
		{name: "factor not below meet", a: x, b: Meet(x, y), want: false},
		{name: "factor below join", a: x, b: Join(x, y), want: true},
		{name: "join not below factor", a: Join(x, y), b: x, want: false},
		{name: "unrelated vars", a: x, b: y, want: false},
		{name: "bottom below everything", a: Constant[string](false), b: Meet(x, y), want: true},
		{name: "everything below top", a: Join(x, Meet(y, z)), b: Constant[string](true), want: true},
		{name: "top only below top", a: Constant[string](true), b: x, want: false},
		{name: "meet below join of same vars", a: Meet(x, y), b: Join(x, y), want: true},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			assert.Equal(t, tcase.want, Preorder(tcase.a, tcase.b))
		})
	}
}

func TestPreorderIsReflexive(t *testing.T) {
	for _, f := range sampleFormulas() {
		assert.True(t, Preorder(f, f), "formula %s", f)
	}
}

// Mutual entailment collapses to equivalence.
func TestPreorderAntisymmetry(t *testing.T) {
	samples := sampleFormulas()
	for _, a := range samples {
		for _, b := range samples {
			if Preorder(a, b) && Preorder(b, a) {
				assert.True(t, Equivalent(a, b), "%s and %s", a, b)
			}
		}
	}
}

func TestSatisfiable(t *testing.T) {
	for _, tcase := range []struct {
		name string
		f    Formula[string]
		want bool
	}{
		{name: "variable", f: x, want: true},
		{name: "top", f: Constant[string](true), want: true},
		{name: "bottom", f: Constant[string](false), want: false},
		{name: "meet with bottom", f: Meet(x, Constant[string](false)), want: false},
		{name: "join of bottoms", f: Join(Constant[string](false), Constant[string](false)), want: false},
		{name: "join rescued by variable", f: Join(Constant[string](false), x), want: true},
		{name: "meet of variables", f: Meet(x, Meet(y, z)), want: true},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			assert.Equal(t, tcase.want, Satisfiable(tcase.f))
		})
	}
}

func TestDual(t *testing.T) {
	assert.Equal(t, Meet(x, y), Dual(Join(x, y)))
	assert.Equal(t, Join(x, y), Dual(Meet(x, y)))
	assert.Equal(t, Constant[string](false), Dual(Constant[string](true)))
	assert.Equal(t, x, Dual(x))

	for _, f := range sampleFormulas() {
		assert.True(t, Equivalent(Dual(Dual(f)), f), "formula %s", f)
		assert.Equal(t, f, Dual(Dual(f)), "formula %s", f)
	}
}

func TestFreeVars(t *testing.T) {
	// duplicates are kept, order is left to right
	f := Join(Meet(x, y), Meet(x, Constant[string](true)))
	assert.Equal(t, []string{"x", "y", "x"}, FreeVars(f))

	assert.Empty(t, FreeVars(Constant[string](false)))
	assert.Equal(t, []string{"z"}, FreeVars(z))
}

func TestSubstitute(t *testing.T) {
	// expanding one variable into a join of two leaves the rest alone
	f := Meet(x, Join(y, Constant[string](false)))
	got := Substitute(f, func(term string) Formula[string] {
		if term == "x" {
			return Join(Var("x1"), Var("x2"))
		}
		return Var(term)
	})
	want := Meet(Join(Var("x1"), Var("x2")), Join(y, Constant[string](false)))
	assert.Equal(t, want, got)

	// identity substitution reproduces the formula
	for _, f := range sampleFormulas() {
		assert.Equal(t, f, Substitute(f, Var[string]))
	}
}

func TestString(t *testing.T) {
	f := Join(Meet(x, y), Constant[string](false))
	assert.Equal(t, "join(meet(x, y), ⊥)", f.String())
	assert.Equal(t, "⊤", Constant[string](true).String())
}

// A formula without variables evaluates on a single trivial branch.
func TestVariableFree(t *testing.T) {
	top := Constant[string](true)
	bottom := Constant[string](false)
	assert.True(t, Equivalent(Join(bottom, top), top))
	assert.True(t, Equivalent(Meet(top, bottom), bottom))
	assert.True(t, Preorder(bottom, top))
	assert.False(t, Preorder(top, bottom))
}

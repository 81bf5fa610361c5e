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

package expression

import (
	"github.com/rancher-sandbox/licy/pkg/lattice"
	"github.com/rancher-sandbox/licy/pkg/spdx"
)

// A Term is the atom license formulas range over: one concrete license,
// registered or free-form, together with its exception. Two terms compare
// equal exactly when they grant the same thing.
type Term struct {
	ID        spdx.LicenseID
	Ref       string
	Exception spdx.ExceptionID
}

func (t Term) String() string {
	out := t.Ref
	if t.ID != "" {
		out = string(t.ID)
	}
	if t.Exception != "" {
		out += " WITH " + string(t.Exception)
	}
	return out
}

// A RangeTable resolves the licenses an "or later" marker covers.
type RangeTable func(spdx.LicenseID) []spdx.LicenseID

// Translate maps a license expression to its boolean lattice formula: AND
// becomes meet, OR becomes join, and an "or later" license becomes the join
// of every license its registered range covers.
func Translate(e Expression) lattice.Formula[Term] {
	return TranslateWith(e, spdx.LicenseRange)
}

// TranslateWith is Translate with an explicit range table.
func TranslateWith(e Expression, ranges RangeTable) lattice.Formula[Term] {
	switch e := e.(type) {
	case Simple:
		return translateSimple(e, ranges)
	case And:
		return lattice.Meet(TranslateWith(e.Left, ranges), TranslateWith(e.Right, ranges))
	case Or:
		return lattice.Join(TranslateWith(e.Left, ranges), TranslateWith(e.Right, ranges))
	default:
		panic("expression: invalid expression type")
	}
}

func translateSimple(s Simple, ranges RangeTable) lattice.Formula[Term] {
	if !s.OrLater || !s.Registered() {
		// A free-form reference has no registered range to walk, "or
		// later" included: it stands for itself alone.
		return lattice.Var(Term{ID: s.ID, Ref: s.Ref, Exception: s.Exception})
	}
	members := ranges(s.ID)
	if len(members) == 0 {
		// The range table rejected the identifier, so nothing can
		// grant the expression.
		return lattice.Constant[Term](false)
	}
	f := lattice.Var(Term{ID: members[0], Exception: s.Exception})
	for _, id := range members[1:] {
		f = lattice.Join(f, lattice.Var(Term{ID: id, Exception: s.Exception}))
	}
	return f
}

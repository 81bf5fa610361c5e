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

// Allowance maps a policy expression to the formula of everything it
// allows: the meet of one variable per license the policy names, with "or
// later" licenses contributing their whole registered range. AND and OR
// in a policy both enumerate allowed licenses, so the structure collapses
// to the set of terms.
func Allowance(policy Expression) lattice.Formula[Term] {
	return AllowanceWith(policy, spdx.LicenseRange)
}

// AllowanceWith is Allowance with an explicit range table.
func AllowanceWith(policy Expression, ranges RangeTable) lattice.Formula[Term] {
	var terms []Term
	walk(policy, func(s Simple) {
		terms = appendTerms(terms, s, ranges)
	})
	if len(terms) == 0 {
		return lattice.Constant[Term](true)
	}
	f := lattice.Var(terms[0])
	for _, t := range terms[1:] {
		f = lattice.Meet(f, lattice.Var(t))
	}
	return f
}

func appendTerms(terms []Term, s Simple, ranges RangeTable) []Term {
	if !s.OrLater || !s.Registered() {
		return append(terms, Term{ID: s.ID, Ref: s.Ref, Exception: s.Exception})
	}
	for _, id := range ranges(s.ID) {
		terms = append(terms, Term{ID: id, Exception: s.Exception})
	}
	return terms
}

// Satisfies reports whether every choice the package expression offers is
// covered by the licenses the policy allows: granting everything the policy
// names must grant the package expression.
func Satisfies(pkg, policy Expression) bool {
	return lattice.Preorder(Allowance(policy), Translate(pkg))
}

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

// Package expression parses SPDX-style license expressions, translates them
// into boolean lattice formulas over license terms, and decides whether a
// package expression satisfies a policy expression.
package expression

import (
	"fmt"

	"github.com/rancher-sandbox/licy/pkg/spdx"
)

// An Expression is a parsed license expression: simple licenses, possibly
// carrying an exception or an "or later" marker, combined with AND and OR.
type Expression interface {
	fmt.Stringer
	expr()
}

// Simple is a single license. The identity is either a registered
// identifier (ID) or a free-form reference (Ref); exactly one is set.
type Simple struct {
	ID        spdx.LicenseID
	Ref       string
	Exception spdx.ExceptionID
	OrLater   bool
}

// And requires compliance with both operands.
type And struct {
	Left, Right Expression
}

// Or leaves the choice between the operands to the consumer.
type Or struct {
	Left, Right Expression
}

func (Simple) expr() {}
func (And) expr()    {}
func (Or) expr()     {}

// Registered reports whether the license identity is a registered
// identifier rather than a free-form reference.
func (s Simple) Registered() bool {
	return s.ID != ""
}

func (s Simple) String() string {
	out := s.Ref
	if s.Registered() {
		out = string(s.ID)
	}
	if s.OrLater {
		out += "+"
	}
	if s.Exception != "" {
		out += " WITH " + string(s.Exception)
	}
	return out
}

func (a And) String() string {
	return wrapOr(a.Left) + " AND " + wrapOr(a.Right)
}

func (o Or) String() string {
	return o.Left.String() + " OR " + o.Right.String()
}

// wrapOr parenthesizes OR operands under an AND, which binds tighter.
func wrapOr(e Expression) string {
	if _, ok := e.(Or); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// References lists the distinct free-form references e names, left to right.
func References(e Expression) []string {
	var refs []string
	seen := map[string]struct{}{}
	walk(e, func(s Simple) {
		if s.Registered() {
			return
		}
		if _, ok := seen[s.Ref]; ok {
			return
		}
		seen[s.Ref] = struct{}{}
		refs = append(refs, s.Ref)
	})
	return refs
}

func walk(e Expression, visit func(Simple)) {
	switch e := e.(type) {
	case Simple:
		visit(e)
	case And:
		walk(e.Left, visit)
		walk(e.Right, visit)
	case Or:
		walk(e.Left, visit)
		walk(e.Right, visit)
	default:
		panic("expression: invalid expression type")
	}
}

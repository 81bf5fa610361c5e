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
	"strings"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/licy/pkg/spdx"
)

// Parse parses an SPDX-style license expression, e.g.
//
//	MIT
//	GPL-2.0+ WITH Classpath-exception-2.0
//	(MIT OR Apache-2.0) AND Zlib
//	DocumentRef-acme:LicenseRef-internal-1
//
// OR binds weaker than AND, both associate to the left, and the AND, OR and
// WITH operators are uppercase. Identifiers that are not on the registered
// license list parse as free-form references.
func Parse(input string) (Expression, error) {
	p := &parser{input: input}
	p.next()
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, errors.Errorf("unexpected %q after license expression at offset %d", p.tok.text, p.tok.pos)
	}
	return e, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokPlus
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	input string
	pos   int
	tok   token
	err   error
}

// next scans the following token. Scan errors are sticky and surface from
// the parse functions.
func (p *parser) next() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos == len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	switch c := p.input[p.pos]; {
	case c == '(':
		p.pos++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == '+':
		p.pos++
		p.tok = token{kind: tokPlus, text: "+", pos: start}
	case isIdentChar(c):
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.tok = token{kind: tokEOF, pos: start}
		if p.err == nil {
			p.err = errors.Errorf("invalid character %q at offset %d", c, start)
		}
	}
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '-' || c == ':'
}

func (p *parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIdent && p.tok.text == "OR" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expression, error) {
	left, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIdent && p.tok.text == "AND" {
		p.next()
		right, err := p.parseSimple()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseSimple() (Expression, error) {
	if p.err != nil {
		return nil, p.err
	}
	switch p.tok.kind {
	case tokLParen:
		p.next()
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, errors.Errorf("missing closing parenthesis at offset %d", p.tok.pos)
		}
		p.next()
		return e, nil
	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		switch name {
		case "AND", "OR", "WITH":
			return nil, errors.Errorf("missing license before %q at offset %d", name, pos)
		}
		s := Simple{}
		if lic, ok := spdx.LookupLicense(name); ok {
			s.ID = lic.ID
		} else {
			s.Ref = name
		}
		p.next()
		if p.tok.kind == tokPlus {
			s.OrLater = true
			p.next()
		}
		if p.tok.kind == tokIdent && p.tok.text == "WITH" {
			p.next()
			if p.tok.kind != tokIdent {
				return nil, errors.Errorf("missing exception after WITH at offset %d", p.tok.pos)
			}
			exc, ok := spdx.LookupException(p.tok.text)
			if !ok {
				return nil, errors.Errorf("unknown license exception %q at offset %d", p.tok.text, p.tok.pos)
			}
			s.Exception = exc
			p.next()
		}
		if p.err != nil {
			return nil, p.err
		}
		return s, nil
	case tokEOF:
		if p.err != nil {
			return nil, p.err
		}
		return nil, errors.Errorf("unexpected end of license expression %q", strings.TrimSpace(p.input))
	default:
		return nil, errors.Errorf("unexpected %q at offset %d", p.tok.text, p.tok.pos)
	}
}

// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/doctag/symbol"
)

// ErrInvalidExpression is matched by every error [Resolver] returns.
var ErrInvalidExpression = errors.New("invalid type expression")

// SyntaxError describes where and why a type expression failed to parse.
type SyntaxError struct {
	Expr   string
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid type expression %q at offset %d: %s", e.Expr, e.Offset, e.Reason)
}

// Unwrap returns [ErrInvalidExpression].
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidExpression
}

// Resolver parses type expressions. It understands the following grammar,
// with whitespace allowed between tokens:
//
//	union   := postfix ('|' postfix)*
//	postfix := primary ('[' ']')*
//	primary := '?' postfix | '(' union ')' | '$this' | name ['<' union (',' union)* '>']
//
// Names that are not keywords are qualified against the context.
//
// The zero value is ready to use and safe for concurrent use.
type Resolver struct{}

// Resolve parses expr in ctx.
func (Resolver) Resolve(expr string, ctx *symbol.Context) (Type, error) {
	p := &parser{expr: expr, ctx: ctx}
	t, err := p.union()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.expr[p.pos:])
	}
	return t, nil
}

type parser struct {
	expr string
	pos  int
	ctx  *symbol.Context
}

func (p *parser) done() bool {
	return p.pos >= len(p.expr)
}

func (p *parser) skipSpace() {
	for !p.done() && strings.IndexByte(" \t\r\n", p.expr[p.pos]) >= 0 {
		p.pos++
	}
}

// accept consumes c if it is the next non-space byte.
func (p *parser) accept(c byte) bool {
	p.skipSpace()
	if !p.done() && p.expr[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Expr: p.expr, Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) union() (Type, error) {
	var members []Type
	for {
		t, err := p.postfix()
		if err != nil {
			return nil, err
		}
		if c, ok := t.(Compound); ok {
			members = append(members, c.Types...)
		} else {
			members = append(members, t)
		}
		if !p.accept('|') {
			break
		}
	}
	if len(members) == 1 {
		return members[0], nil
	}
	return Compound{Types: members}, nil
}

func (p *parser) postfix() (Type, error) {
	t, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.accept('[') {
		if !p.accept(']') {
			return nil, p.errorf("expected ']'")
		}
		t = Array{Value: t}
	}
	return t, nil
}

func (p *parser) primary() (Type, error) {
	switch {
	case p.accept('?'):
		t, err := p.postfix()
		if err != nil {
			return nil, err
		}
		return Nullable{Type: t}, nil
	case p.accept('('):
		t, err := p.union()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, p.errorf("expected ')'")
		}
		return t, nil
	}

	p.skipSpace()
	if strings.HasPrefix(p.expr[p.pos:], "$this") {
		p.pos += len("$this")
		return This{}, nil
	}

	start := p.pos
	name := p.name()
	if name == "" {
		if p.done() {
			return nil, p.errorf("unexpected end of expression")
		}
		return nil, p.errorf("unexpected %q", p.expr[p.pos:p.pos+1])
	}

	var base Type
	if strings.EqualFold(name, "array") {
		base = Array{}
	} else if kw, ok := LookupKeyword(name); ok {
		base = kw
	} else {
		fqsen, err := symbol.NewFqsen(p.ctx.Qualify(name))
		if err != nil {
			return nil, &SyntaxError{Expr: p.expr, Offset: start, Reason: fmt.Sprintf("invalid class name %q", name)}
		}
		base = Object{Fqsen: fqsen}
	}

	if !p.accept('<') {
		return base, nil
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}
	if _, ok := base.(Array); ok {
		switch len(params) {
		case 1:
			return Array{Value: params[0]}, nil
		case 2:
			return Array{Key: params[0], Value: params[1]}, nil
		default:
			return nil, &SyntaxError{Expr: p.expr, Offset: start, Reason: "array takes one or two type parameters"}
		}
	}
	return Generic{Base: base, Params: params}, nil
}

// params parses the parameter list of a generic after its opening '<'.
func (p *parser) params() ([]Type, error) {
	var params []Type
	for {
		t, err := p.union()
		if err != nil {
			return nil, err
		}
		params = append(params, t)
		if p.accept('>') {
			return params, nil
		}
		if !p.accept(',') {
			return nil, p.errorf("expected ',' or '>'")
		}
	}
}

// name scans a possibly qualified identifier. Hyphens are allowed after the
// first byte for pseudo types like class-string.
func (p *parser) name() string {
	start := p.pos
	for !p.done() {
		c := p.expr[p.pos]
		switch {
		case c == '\\', c == '_', c >= 0x80,
			'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case p.pos > start && ('0' <= c && c <= '9' || c == '-'):
		default:
			return p.expr[start:p.pos]
		}
		p.pos++
	}
	return p.expr[start:p.pos]
}

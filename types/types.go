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

// Package types contains structured values for type expressions found in
// documentation tags, and a resolver that produces them from text.
//
// Every Type renders back to a canonical textual form via String. Canonical
// forms normalize spelling (e.g. "integer" becomes "int") and qualify class
// names, but otherwise describe the same type as the source text.
package types

import (
	"strings"

	"github.com/bufbuild/doctag/symbol"
)

// Type is a resolved type expression.
type Type interface {
	String() string

	isType()
}

// Keyword is a built-in or pseudo type such as int, string or mixed.
type Keyword string

const (
	String      Keyword = "string"
	Int         Keyword = "int"
	Float       Keyword = "float"
	Bool        Keyword = "bool"
	Mixed       Keyword = "mixed"
	Void        Keyword = "void"
	Null        Keyword = "null"
	Callable    Keyword = "callable"
	Iterable    Keyword = "iterable"
	AnyObject   Keyword = "object"
	Resource    Keyword = "resource"
	False       Keyword = "false"
	True        Keyword = "true"
	Never       Keyword = "never"
	Self        Keyword = "self"
	Static      Keyword = "static"
	Parent      Keyword = "parent"
	Scalar      Keyword = "scalar"
	List        Keyword = "list"
	ArrayKey    Keyword = "array-key"
	ClassString Keyword = "class-string"
)

// keywords maps lowercased spellings to their canonical keyword.
var keywords = map[string]Keyword{
	"string":       String,
	"int":          Int,
	"integer":      Int,
	"float":        Float,
	"double":       Float,
	"bool":         Bool,
	"boolean":      Bool,
	"mixed":        Mixed,
	"void":         Void,
	"null":         Null,
	"callable":     Callable,
	"iterable":     Iterable,
	"object":       AnyObject,
	"resource":     Resource,
	"false":        False,
	"true":         True,
	"never":        Never,
	"self":         Self,
	"static":       Static,
	"parent":       Parent,
	"scalar":       Scalar,
	"list":         List,
	"array-key":    ArrayKey,
	"class-string": ClassString,
}

// LookupKeyword returns the canonical keyword for name, if it is one.
// Lookup is case-insensitive.
func LookupKeyword(name string) (Keyword, bool) {
	k, ok := keywords[strings.ToLower(name)]
	return k, ok
}

func (k Keyword) String() string { return string(k) }

// This is the $this type.
type This struct{}

func (This) String() string { return "$this" }

// Object is a class, interface or enum type.
type Object struct {
	Fqsen symbol.Fqsen
}

func (o Object) String() string { return o.Fqsen.String() }

// Array is an array type.
//
// Value is nil for a bare "array". Key is nil unless the key type was
// spelled out with array<K, V>.
type Array struct {
	Key   Type
	Value Type
}

func (a Array) String() string {
	switch {
	case a.Value == nil:
		return "array"
	case a.Key == nil:
		return group(a.Value) + "[]"
	default:
		return "array<" + a.Key.String() + ", " + a.Value.String() + ">"
	}
}

// Nullable is ?T.
type Nullable struct {
	Type Type
}

func (n Nullable) String() string { return "?" + group(n.Type) }

// Compound is a union A|B|C.
type Compound struct {
	Types []Type
}

func (c Compound) String() string {
	parts := make([]string, len(c.Types))
	for i, t := range c.Types {
		parts[i] = t.String()
	}
	return strings.Join(parts, "|")
}

// Generic is a parameterized type other than array, such as list<int> or
// \ArrayObject<string>.
type Generic struct {
	Base   Type
	Params []Type
}

func (g Generic) String() string {
	var b strings.Builder
	b.WriteString(g.Base.String())
	b.WriteByte('<')
	for i, p := range g.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte('>')
	return b.String()
}

func (Keyword) isType()  {}
func (This) isType()     {}
func (Object) isType()   {}
func (Array) isType()    {}
func (Nullable) isType() {}
func (Compound) isType() {}
func (Generic) isType()  {}

// group renders t, parenthesized if it would otherwise bind looser than a
// prefix or suffix operator.
func group(t Type) string {
	switch t.(type) {
	case Compound, Nullable:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}

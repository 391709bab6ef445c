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

package tag

import (
	"github.com/rs/zerolog"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
	"github.com/bufbuild/doctag/types"
)

// TypeResolver resolves a type expression, such as "int|string[]", in a
// context. [types.Resolver] is the default implementation.
type TypeResolver interface {
	Resolve(expr string, ctx *symbol.Context) (types.Type, error)
}

// ReferenceResolver resolves a reference, such as "Foo::bar()", to a fully
// qualified name. [symbol.Resolver] is the default implementation.
type ReferenceResolver interface {
	Resolve(expr string, ctx *symbol.Context) (symbol.Fqsen, error)
}

// DescriptionFactory builds a description from free text. It must not fail;
// empty text yields an empty description. [description.Factory] is the
// default implementation.
type DescriptionFactory interface {
	Create(text string, ctx *symbol.Context) *description.Description
}

// TypeResolverFunc adapts a function to [TypeResolver].
type TypeResolverFunc func(string, *symbol.Context) (types.Type, error)

var _ TypeResolver = TypeResolverFunc(nil)

// Resolve implements [TypeResolver].
func (f TypeResolverFunc) Resolve(expr string, ctx *symbol.Context) (types.Type, error) {
	return f(expr, ctx)
}

// ReferenceResolverFunc adapts a function to [ReferenceResolver].
type ReferenceResolverFunc func(string, *symbol.Context) (symbol.Fqsen, error)

var _ ReferenceResolver = ReferenceResolverFunc(nil)

// Resolve implements [ReferenceResolver].
func (f ReferenceResolverFunc) Resolve(expr string, ctx *symbol.Context) (symbol.Fqsen, error) {
	return f(expr, ctx)
}

// DescriptionFactoryFunc adapts a function to [DescriptionFactory].
type DescriptionFactoryFunc func(string, *symbol.Context) *description.Description

var _ DescriptionFactory = DescriptionFactoryFunc(nil)

// Create implements [DescriptionFactory].
func (f DescriptionFactoryFunc) Create(text string, ctx *symbol.Context) *description.Description {
	return f(text, ctx)
}

// Config carries the collaborators a factory delegates to. Which of them are
// required depends on the tag kind; a factory called without one it needs
// fails with a [*ConfigError].
//
// Config values are read-only to factories, so one Config may be shared by
// concurrent calls as long as its collaborators are safe for concurrent use.
type Config struct {
	// Resolves type expressions. Required by typed and variable tags.
	TypeResolver TypeResolver
	// Resolves references. Required by reference tags.
	ReferenceResolver ReferenceResolver
	// Builds descriptions. Required by all tags.
	DescriptionFactory DescriptionFactory
	// The naming context passed, unchanged, to the collaborators. May be nil.
	Context *symbol.Context
	// Receives debug-level traces of tokenization decisions. If nil, nothing
	// is logged.
	Logger *zerolog.Logger
}

// requirement is a set of collaborators.
type requirement uint8

const (
	needTypes requirement = 1 << iota
	needReferences
	needDescriptions
)

func (c Config) check(name string, need requirement) error {
	switch {
	case need&needTypes != 0 && c.TypeResolver == nil:
		return &ConfigError{Tag: name, Missing: "type resolver"}
	case need&needReferences != 0 && c.ReferenceResolver == nil:
		return &ConfigError{Tag: name, Missing: "reference resolver"}
	case need&needDescriptions != 0 && c.DescriptionFactory == nil:
		return &ConfigError{Tag: name, Missing: "description factory"}
	}
	return nil
}

func (c Config) logger(name string) zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return c.Logger.With().Str("tag", name).Logger()
}

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

package doctag

import (
	"errors"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
	"github.com/bufbuild/doctag/tag"
	"github.com/bufbuild/doctag/types"
)

// DefaultConfig returns a configuration that uses the built-in collaborators:
// [types.Resolver], [symbol.Resolver] and a [description.Factory] that
// creates inline tags with reg. A nil reg means the built-in tags.
func DefaultConfig(reg *tag.Registry, ctx *symbol.Context) tag.Config {
	return withDefaults(reg, tag.Config{Context: ctx})
}

// withDefaults fills in the collaborators missing from cfg.
func withDefaults(reg *tag.Registry, cfg tag.Config) tag.Config {
	if reg == nil {
		reg = defaultRegistry
	}
	if cfg.TypeResolver == nil {
		cfg.TypeResolver = types.Resolver{}
	}
	if cfg.ReferenceResolver == nil {
		cfg.ReferenceResolver = symbol.Resolver{}
	}
	if cfg.DescriptionFactory == nil {
		factory := &description.Factory{}
		cfg.DescriptionFactory = factory
		factory.Inline = reg.Inline(cfg)
	}
	return cfg
}

// errNoResolvers is returned by an empty composite resolver.
var errNoResolvers = errors.New("no resolvers configured")

// CompositeTypeResolver tries each of its resolvers in turn and returns the
// first successful result. If all fail, the first error is returned.
type CompositeTypeResolver []tag.TypeResolver

var _ tag.TypeResolver = CompositeTypeResolver(nil)

func (c CompositeTypeResolver) Resolve(expr string, ctx *symbol.Context) (types.Type, error) {
	if len(c) == 0 {
		return nil, errNoResolvers
	}
	var firstErr error
	for _, res := range c {
		t, err := res.Resolve(expr, ctx)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// CompositeReferenceResolver is like [CompositeTypeResolver] for references.
type CompositeReferenceResolver []tag.ReferenceResolver

var _ tag.ReferenceResolver = CompositeReferenceResolver(nil)

func (c CompositeReferenceResolver) Resolve(expr string, ctx *symbol.Context) (symbol.Fqsen, error) {
	if len(c) == 0 {
		return symbol.Fqsen{}, errNoResolvers
	}
	var firstErr error
	for _, res := range c {
		f, err := res.Resolve(expr, ctx)
		if err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return symbol.Fqsen{}, firstErr
}

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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
	"github.com/bufbuild/doctag/types"
)

// defaultConfig wires the in-module collaborators.
func defaultConfig(ctx *symbol.Context) Config {
	return Config{
		TypeResolver:       types.Resolver{},
		ReferenceResolver:  symbol.Resolver{},
		DescriptionFactory: &description.Factory{},
		Context:            ctx,
	}
}

// recordingFactory returns a description factory that checks its inputs and
// hands back desc.
func recordingFactory(t *testing.T, wantText string, wantCtx *symbol.Context, desc *description.Description) DescriptionFactory {
	t.Helper()
	return DescriptionFactoryFunc(func(text string, ctx *symbol.Context) *description.Description {
		assert.Equal(t, wantText, text)
		assert.Same(t, wantCtx, ctx)
		return desc
	})
}

// failingTypes is a type resolver that must not be called.
func failingTypes(t *testing.T) TypeResolver {
	t.Helper()
	return TypeResolverFunc(func(expr string, _ *symbol.Context) (types.Type, error) {
		t.Errorf("unexpected call to type resolver with %q", expr)
		return nil, nil
	})
}

// failingReferences is a reference resolver that must not be called.
func failingReferences(t *testing.T) ReferenceResolver {
	t.Helper()
	return ReferenceResolverFunc(func(expr string, _ *symbol.Context) (symbol.Fqsen, error) {
		t.Errorf("unexpected call to reference resolver with %q", expr)
		return symbol.Fqsen{}, nil
	})
}

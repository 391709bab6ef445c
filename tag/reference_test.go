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
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
)

func TestSee(t *testing.T) {
	t.Parallel()

	fqsen := symbol.MustFqsen(`\DateTime`)
	desc := description.New("Description")
	see := NewSee(fqsen, desc)

	assert.Equal(t, "see", see.Name())
	assert.Equal(t, fqsen, see.Reference())
	assert.Same(t, desc, see.Description())
	assert.Equal(t, `\DateTime Description`, see.String())
	assert.Equal(t, `@see \DateTime Description`, Render(see, nil))
	assert.Equal(t, "Rendered output", Render(see, FormatterFunc(func(got Tag) string {
		assert.Same(t, see, got)
		return "Rendered output"
	})))

	assert.Equal(t, `\DateTime`, NewSee(fqsen, nil).String())
	assert.Equal(t, `\DateTime`, NewSee(fqsen, description.New("")).String())
	assert.Equal(t, "see below", NewSee(nil, description.New("see below")).String())
	assert.Empty(t, NewSee(nil, nil).String())
}

func TestCreateSee(t *testing.T) {
	t.Parallel()

	ctx := symbol.NewContext("", nil)
	fqsen := symbol.MustFqsen(`\DateTime`)
	desc := description.New("My Description")
	cfg := Config{
		ReferenceResolver: ReferenceResolverFunc(func(expr string, got *symbol.Context) (symbol.Fqsen, error) {
			assert.Equal(t, "DateTime", expr)
			assert.Same(t, ctx, got)
			return fqsen, nil
		}),
		DescriptionFactory: recordingFactory(t, "My Description", ctx, desc),
		Context:            ctx,
	}

	see, err := CreateSee("DateTime My Description", cfg)
	require.NoError(t, err)
	assert.Equal(t, `\DateTime My Description`, see.String())
	assert.Equal(t, fqsen, see.Reference())
	assert.Same(t, desc, see.Description())
}

func TestCreateSeeURL(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig(nil)
	cfg.ReferenceResolver = failingReferences(t)

	see, err := CreateSee("http://example.com/docs   The docs", cfg)
	require.NoError(t, err)
	assert.Equal(t, symbol.URL("http://example.com/docs"), see.Reference())
	assert.Equal(t, "http://example.com/docs The docs", see.String())
}

func TestCreateSeeMember(t *testing.T) {
	t.Parallel()

	ctx := symbol.NewContext(`My\Space`, map[string]string{"Other": `Vendor\Other`})
	see, err := CreateSee("Other::method()", defaultConfig(ctx))
	require.NoError(t, err)
	assert.Equal(t, `\Vendor\Other::method()`, see.String())
	assert.True(t, see.Description().IsEmpty())
}

func TestCovers(t *testing.T) {
	t.Parallel()

	covers, err := CreateCovers(`\DateTime Description`, defaultConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, "covers", covers.Name())
	assert.Equal(t, `\DateTime`, covers.Reference().String())
	assert.Equal(t, "Description", covers.Description().Render())
	assert.Equal(t, `\DateTime Description`, covers.String())

	// Round trip.
	again, err := CreateCovers(covers.String(), defaultConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, covers.String(), again.String())

	covers, err = CreateCovers("Foo\n\t  multi\n line", defaultConfig(symbol.NewContext("Ns", nil)))
	require.NoError(t, err)
	assert.Equal(t, `\Ns\Foo`, covers.Reference().String())
	assert.Equal(t, "multi\n line", covers.Description().Render())
}

func TestUses(t *testing.T) {
	t.Parallel()

	uses, err := CreateUses(`Foo::$bar`, defaultConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, "uses", uses.Name())
	assert.Equal(t, `\Foo::$bar`, uses.String())

	uses = NewUses(symbol.MustFqsen(`\Foo`), description.New("Desc"))
	assert.Equal(t, `\Foo Desc`, uses.String())
	assert.Equal(t, "Desc", uses.Description().Render())
	assert.Equal(t, `\Foo`, uses.Reference().String())
}

func TestReferenceErrors(t *testing.T) {
	t.Parallel()

	create := map[string]func(string, Config) (Tag, error){
		"covers": creatorFunc(CreateCovers),
		"see":    creatorFunc(CreateSee),
		"uses":   creatorFunc(CreateUses),
	}
	for name, create := range create {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := create("", defaultConfig(nil))
			require.ErrorIs(t, err, ErrEmptyBody)
			_, err = create(" \t\n", defaultConfig(nil))
			require.ErrorIs(t, err, ErrEmptyBody)

			_, err = create("body", Config{})
			require.ErrorIs(t, err, ErrMisconfigured)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, name, cfgErr.Tag)
			assert.Equal(t, "reference resolver", cfgErr.Missing)

			_, err = create("body", Config{ReferenceResolver: symbol.Resolver{}})
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "description factory", cfgErr.Missing)

			// Resolver errors pass through unchanged.
			_, err = create("1Foo description", defaultConfig(nil))
			require.ErrorIs(t, err, symbol.ErrInvalidReference)
			var syntaxErr *symbol.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, "1Foo", syntaxErr.Expr)
		})
	}
}

// creatorFunc erases the concrete tag type of a factory.
func creatorFunc[T Tag](create func(string, Config) (T, error)) func(string, Config) (Tag, error) {
	c := creator(create)
	return func(body string, cfg Config) (Tag, error) {
		return c("", body, cfg)
	}
}

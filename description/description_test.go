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

package description

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/doctag/symbol"
)

type fakeTag struct {
	name, body string
}

func (f fakeTag) Name() string   { return f.name }
func (f fakeTag) String() string { return f.body }

func TestNew(t *testing.T) {
	t.Parallel()

	d := New("My Description")
	assert.Equal(t, "My Description", d.Render())
	assert.Equal(t, d.Render(), d.Render())
	assert.Equal(t, "My Description", d.String())
	assert.Empty(t, d.Tags())
	assert.False(t, d.IsEmpty())

	assert.True(t, New("").IsEmpty())

	var nilDesc *Description
	assert.Empty(t, nilDesc.Render())
	assert.Nil(t, nilDesc.Tags())
	assert.True(t, nilDesc.IsEmpty())
}

func TestFactoryWithoutInline(t *testing.T) {
	t.Parallel()

	var f *Factory
	d := f.Create("  See {@see Foo} here \n", nil)
	assert.Equal(t, "See {@see Foo} here", d.Render())
	assert.Empty(t, d.Tags())

	d = (&Factory{}).Create("", nil)
	assert.True(t, d.IsEmpty())
}

func TestFactoryInline(t *testing.T) {
	t.Parallel()

	ctx := symbol.NewContext("My", nil)
	var calls []string
	f := &Factory{
		Inline: func(name, body string, got *symbol.Context) (Inline, error) {
			assert.Same(t, ctx, got)
			calls = append(calls, name+"|"+body)
			if name == "broken" {
				return nil, errors.New("broken tag")
			}
			return fakeTag{name: name, body: strings.ToUpper(body)}, nil
		},
	}

	d := f.Create("Uses {@see foo} and {@link  http://x {y}} but {@broken thing}, {@} and {@unterminated", ctx)
	require.Len(t, d.Tags(), 2)
	assert.Equal(t, "see", d.Tags()[0].Name())
	assert.Equal(t, "link", d.Tags()[1].Name())
	assert.Equal(t, []string{"see|foo", "link|http://x {y}", "broken|thing"}, calls)
	assert.Equal(t,
		"Uses {@see FOO} and {@link HTTP://X {Y}} but {@broken thing}, {@} and {@unterminated",
		d.Render(),
	)

	d = f.Create("{@internal}", ctx)
	require.Len(t, d.Tags(), 1)
	assert.Equal(t, "{@internal}", d.Render())
}

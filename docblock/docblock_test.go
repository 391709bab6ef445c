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

package docblock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/reporter"
	"github.com/bufbuild/doctag/tag"
	"github.com/bufbuild/doctag/types"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment string
		text    string
		tags    []RawTag
	}{
		{
			name: "full",
			comment: "/**\n" +
				" * Sums two numbers.\n" +
				" *\n" +
				" * Longer text\n" +
				" * over lines.\n" +
				" *\n" +
				" * @param int $a the first\n" +
				" *        operand\n" +
				" * @return int\n" +
				" * @internal\n" +
				" */",
			text: "Sums two numbers.\n\nLonger text\nover lines.",
			tags: []RawTag{
				{Name: "param", Body: "int $a the first\n       operand", Pos: reporter.Pos{Line: 7, Col: 4}},
				{Name: "return", Body: "int", Pos: reporter.Pos{Line: 9, Col: 4}},
				{Name: "internal", Pos: reporter.Pos{Line: 10, Col: 4}},
			},
		},
		{
			name:    "single line",
			comment: "/** @var int $x */",
			tags:    []RawTag{{Name: "var", Body: "int $x", Pos: reporter.Pos{Line: 1, Col: 5}}},
		},
		{
			name:    "text only",
			comment: "/** Just text. */",
			text:    "Just text.",
		},
		{
			name:    "tabs",
			comment: "/**\n\t * @see Foo\n\t */",
			tags:    []RawTag{{Name: "see", Body: "Foo", Pos: reporter.Pos{Line: 2, Col: 8}}},
		},
		{
			name:    "indented",
			comment: "/**\n *   @see Foo\n */",
			tags:    []RawTag{{Name: "see", Body: "Foo", Pos: reporter.Pos{Line: 2, Col: 6}}},
		},
		{
			name:    "wide space",
			comment: "/**\n * 　@see Foo\n */",
			tags:    []RawTag{{Name: "see", Body: "Foo", Pos: reporter.Pos{Line: 2, Col: 6}}},
		},
		{
			name:    "not tags",
			comment: "/**\n * @1 is not a tag\n * email me @ home\n * {@see Foo} is inline\n */",
			text:    "@1 is not a tag\nemail me @ home\n{@see Foo} is inline",
		},
		{
			name:    "annotation",
			comment: "/**\n * @ORM\\Column(type=\"string\")\n * @Route{\"/\"}\n */",
			tags: []RawTag{
				{Name: `ORM\Column`, Body: `(type="string")`, Pos: reporter.Pos{Line: 2, Col: 4}},
				{Name: "Route", Body: `{"/"}`, Pos: reporter.Pos{Line: 3, Col: 4}},
			},
		},
		{
			name:    "crlf",
			comment: "/**\r\n * Text\r\n * @api\r\n */",
			text:    "Text",
			tags:    []RawTag{{Name: "api", Pos: reporter.Pos{Line: 3, Col: 4}}},
		},
		{
			name:    "undecorated",
			comment: "Summary\n@return int\n  the sum",
			text:    "Summary",
			tags:    []RawTag{{Name: "return", Body: "int\n  the sum", Pos: reporter.Pos{Line: 2, Col: 1}}},
		},
		{
			name:    "trailing newline",
			comment: "/**\n * Text.\n * @var int $x the x\n */\n",
			text:    "Text.",
			tags:    []RawTag{{Name: "var", Body: "int $x the x", Pos: reporter.Pos{Line: 3, Col: 4}}},
		},
		{
			name:    "trailing blank lines",
			comment: "/**\r\n * @api\r\n */\r\n\r\n  \n",
			tags:    []RawTag{{Name: "api", Pos: reporter.Pos{Line: 2, Col: 4}}},
		},
		{
			name:    "single line with newline",
			comment: "/** @var int $x */\n",
			tags:    []RawTag{{Name: "var", Body: "int $x", Pos: reporter.Pos{Line: 1, Col: 5}}},
		},
		{
			name: "empty",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			text, tags := Split(test.comment)
			assert.Equal(t, test.text, text)
			if diff := cmp.Diff(test.tags, tags); diff != "" {
				t.Errorf("tags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, summary, desc string
	}{
		{text: "Sums two numbers.\n\nLonger text\nover lines.", summary: "Sums two numbers.", desc: "Longer text\nover lines."},
		{text: "Sums two numbers.\nLonger text", summary: "Sums two numbers.", desc: "Longer text"},
		{text: "A summary that\nspans lines\n\nThen more.", summary: "A summary that\nspans lines", desc: "Then more."},
		{text: "No period", summary: "No period"},
		{},
	}
	for _, test := range tests {
		b := &Block{Text: test.text}
		assert.Equal(t, test.summary, b.Summary(), test.text)
		assert.Equal(t, test.desc, b.Description(), test.text)
	}

	var nilBlock *Block
	assert.Empty(t, nilBlock.Summary())
	assert.Empty(t, nilBlock.TagsNamed("param"))
}

func TestBlockTags(t *testing.T) {
	t.Parallel()

	internal, err := tag.NewGeneric("internal", nil)
	require.NoError(t, err)
	b := &Block{
		Text: "Sums.\n\nMore",
		Tags: []tag.Tag{
			tag.NewParam("a", types.Int, nil),
			tag.NewReturn(types.Int, description.New("the sum")),
			tag.NewParam("b", types.Int, description.New("second\noperand")),
			internal,
		},
	}

	params := b.TagsNamed("param")
	require.Len(t, params, 2)
	assert.Same(t, b.Tags[0], params[0])
	assert.Same(t, b.Tags[2], params[1])
	assert.True(t, b.HasTag("internal"))
	assert.False(t, b.HasTag("throws"))

	assert.Equal(t, "/**\n"+
		" * Sums.\n"+
		" *\n"+
		" * More\n"+
		" *\n"+
		" * @param int $a\n"+
		" * @return int the sum\n"+
		" * @param int $b second\n"+
		" * operand\n"+
		" * @internal\n"+
		" */", b.String())

	assert.Equal(t, "/**\n */", (&Block{}).String())
	assert.Equal(t, "/**\n * @internal\n */", (&Block{Tags: []tag.Tag{internal}}).String())
	assert.Equal(t, "/**\n * Text\n *\n * #internal\n */", (&Block{Text: "Text", Tags: []tag.Tag{internal}}).Render(
		tag.FormatterFunc(func(t tag.Tag) string { return "#" + t.Name() }),
	))
}

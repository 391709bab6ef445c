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

// Package docblock splits doc comments into free text and tags, and holds
// the parsed result.
package docblock

import (
	"strings"

	"github.com/bufbuild/doctag/tag"
)

// Block is a parsed doc comment.
type Block struct {
	// The free text before the first tag, with comment decoration removed.
	Text string
	// The tags that parsed, in source order.
	Tags []tag.Tag
}

// Summary returns the first paragraph of the text: everything up to the
// first blank line, or up to and including the first line that ends with a
// period.
func (b *Block) Summary() string {
	summary, _ := b.split()
	return summary
}

// Description returns the text that follows the summary.
func (b *Block) Description() string {
	_, desc := b.split()
	return desc
}

func (b *Block) split() (string, string) {
	if b == nil {
		return "", ""
	}
	lines := strings.Split(b.Text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			return join(lines[:i]), join(lines[i:])
		}
		if strings.HasSuffix(line, ".") {
			return join(lines[:i+1]), join(lines[i+1:])
		}
	}
	return join(lines), ""
}

func join(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// TagsNamed returns the tags with the given name, in source order.
func (b *Block) TagsNamed(name string) []tag.Tag {
	if b == nil {
		return nil
	}
	var tags []tag.Tag
	for _, t := range b.Tags {
		if t.Name() == name {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasTag reports whether the block has at least one tag with the given name.
func (b *Block) HasTag(name string) bool {
	return len(b.TagsNamed(name)) > 0
}

// String renders the block back into a doc comment.
func (b *Block) String() string {
	return b.Render(nil)
}

// Render renders the block back into a doc comment, with each tag written
// by f. A nil f uses [tag.PassthroughFormatter].
func (b *Block) Render(f tag.Formatter) string {
	var lines []string
	if b != nil && b.Text != "" {
		lines = append(lines, strings.Split(b.Text, "\n")...)
		if len(b.Tags) > 0 {
			lines = append(lines, "")
		}
	}
	if b != nil {
		for _, t := range b.Tags {
			lines = append(lines, strings.Split(tag.Render(t, f), "\n")...)
		}
	}

	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(" */")
	return sb.String()
}

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
	"strings"
	"unicode"

	"github.com/bufbuild/doctag/symbol"
)

// InlineFunc creates the inline tag {@name body}.
type InlineFunc func(name, body string, ctx *symbol.Context) (Inline, error)

// Factory creates descriptions from the trailing text of a tag.
//
// The zero value (and a nil *Factory) produces descriptions without inline
// tags: {@...} sequences are kept as literal text.
type Factory struct {
	// Creates inline tags. Optional.
	Inline InlineFunc
}

// Create builds a description from text, trimming surrounding whitespace.
// It never fails: an inline tag that cannot be created is kept as literal
// text.
func (f *Factory) Create(text string, ctx *symbol.Context) *Description {
	text = strings.TrimSpace(text)
	if f == nil || f.Inline == nil {
		return New(text)
	}

	d := &Description{}
	for text != "" {
		start := strings.Index(text, "{@")
		if start < 0 {
			d.literal(text)
			break
		}
		end := closingBrace(text, start)
		if end < 0 {
			d.literal(text)
			break
		}

		raw := text[start : end+1]
		name, body := text[start+2:end], ""
		if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
			name, body = name[:i], strings.TrimSpace(name[i:])
		}

		d.literal(text[:start])
		if tag := f.inline(name, body, ctx); tag != nil {
			d.segments = append(d.segments, segment{tag: tag})
		} else {
			d.literal(raw)
		}
		text = text[end+1:]
	}
	return d
}

func (f *Factory) inline(name, body string, ctx *symbol.Context) Inline {
	if name == "" {
		return nil
	}
	tag, err := f.Inline(name, body, ctx)
	if err != nil {
		return nil
	}
	return tag
}

// literal appends text, merging with a preceding literal segment.
func (d *Description) literal(text string) {
	if text == "" {
		return
	}
	if n := len(d.segments); n > 0 && d.segments[n-1].tag == nil {
		d.segments[n-1].text += text
		return
	}
	d.segments = append(d.segments, segment{text: text})
}

// closingBrace returns the index of the brace closing the inline tag opened
// at start, allowing nested braces in the body, or -1.
func closingBrace(text string, start int) int {
	depth := 0
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

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

// Package description models the free-text part of a documentation tag.
//
// A description is text that may embed inline tags, written as
// {@name body}, e.g. "See {@see Foo::bar()} for details". Inline tags are kept
// as structured values and rendered back into the text on demand.
package description

import (
	"strings"
)

// Inline is a tag embedded in a description. Tags from package tag satisfy
// this interface.
type Inline interface {
	Name() string
	String() string
}

// Description is the rendered-on-demand text of a tag. It is immutable.
//
// A nil *Description is valid and renders as the empty string.
type Description struct {
	segments []segment
}

// segment is either literal text or an inline tag.
type segment struct {
	text string
	tag  Inline
}

// New returns a description consisting of literal text only.
func New(text string) *Description {
	if text == "" {
		return &Description{}
	}
	return &Description{segments: []segment{{text: text}}}
}

// Tags returns the inline tags, in order of appearance.
func (d *Description) Tags() []Inline {
	if d == nil {
		return nil
	}
	var tags []Inline
	for _, seg := range d.segments {
		if seg.tag != nil {
			tags = append(tags, seg.tag)
		}
	}
	return tags
}

// IsEmpty reports whether the description renders to nothing.
func (d *Description) IsEmpty() bool {
	return d.Render() == ""
}

// Render reassembles the description, rendering each inline tag as
// {@name body}.
func (d *Description) Render() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	for _, seg := range d.segments {
		if seg.tag == nil {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString("{@")
		b.WriteString(seg.tag.Name())
		if body := seg.tag.String(); body != "" {
			b.WriteByte(' ')
			b.WriteString(body)
		}
		b.WriteByte('}')
	}
	return b.String()
}

// String implements [fmt.Stringer]; it is equivalent to Render.
func (d *Description) String() string {
	return d.Render()
}

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

// Package tag parses the bodies of individual documentation tags, such as
// the "string $foo The foo" in "@param string $foo The foo", into immutable,
// structured values.
//
// There are three grammars:
//
//   - Reference tags (@covers, @see, @uses): <reference> [<description>]
//   - Typed tags (@return, @throws): [<type>] [<description>]
//   - Variable tags (@param, @property, @property-read, @property-write,
//     @var): [<type>] [$<variable>] [<description>]
//
// Tags with any other name parse as [Generic] tags, which have only a
// description.
//
// Each kind has a constructor (e.g. [NewReturn]) and a factory that parses a
// body (e.g. [CreateReturn]). Factories delegate type expressions, references
// and descriptions to the collaborators in [Config]. A [Registry] maps tag
// names to factories.
//
// String on every tag reconstructs a normalized body from the parsed fields;
// parsing that string again yields an equivalent tag. [Render] produces the
// whole tag line, including the @name.
package tag

import (
	"strings"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/types"
)

// Tag is a parsed documentation tag.
type Tag interface {
	// Name returns the tag keyword without the leading @, e.g. "return" or
	// "property-read".
	Name() string
	// Description returns the description, which may be nil.
	Description() *description.Description
	// String reconstructs the tag body from its parsed fields.
	String() string
}

// Formatter renders a whole tag, including its name.
type Formatter interface {
	Format(Tag) string
}

// FormatterFunc adapts a function to [Formatter].
type FormatterFunc func(Tag) string

var _ Formatter = FormatterFunc(nil)

// Format implements [Formatter].
func (f FormatterFunc) Format(t Tag) string {
	return f(t)
}

// PassthroughFormatter renders a tag as "@name body".
type PassthroughFormatter struct{}

// Format implements [Formatter].
func (PassthroughFormatter) Format(t Tag) string {
	return joinParts("@"+t.Name(), t.String())
}

// Render renders t with f. A nil f renders with [PassthroughFormatter].
func Render(t Tag, f Formatter) string {
	if f == nil {
		f = PassthroughFormatter{}
	}
	return f.Format(t)
}

// joinParts joins the non-empty parts with single spaces.
func joinParts(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}

func typeString(t types.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

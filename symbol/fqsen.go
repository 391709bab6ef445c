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

package symbol

import (
	"fmt"
	"regexp"
	"strings"
)

const ident = `[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*`

var fqsenPattern = regexp.MustCompile(
	`^\\(?:` + ident + `\\)*` + ident +
		`(?:\(\)|::(?:\$` + ident + `|` + ident + `(?:\(\))?))?$`,
)

// Reference is something a tag can point at: either an [Fqsen] or a [URL].
type Reference interface {
	String() string

	isReference()
}

// Fqsen is a fully qualified structural element name, such as
// `\My\Space\Foo`, `\My\Space\Foo::bar()`, `\My\Space\Foo::$baz` or
// `\My\Space\helper()`.
//
// The zero value is not a valid name; see [Fqsen.IsZero].
type Fqsen struct {
	fqsen string
}

// NewFqsen validates s and returns it as an Fqsen.
func NewFqsen(s string) (Fqsen, error) {
	if !fqsenPattern.MatchString(s) {
		return Fqsen{}, fmt.Errorf("%q is not a fully qualified structural element name", s)
	}
	return Fqsen{fqsen: s}, nil
}

// MustFqsen is like [NewFqsen] but panics on invalid input. It is meant for
// literals in tests and initializers.
func MustFqsen(s string) Fqsen {
	f, err := NewFqsen(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the final element of the name: the member for member
// references, otherwise the last namespace segment. Call parentheses are
// dropped.
func (f Fqsen) Name() string {
	s := f.fqsen
	if _, member, ok := strings.Cut(s, "::"); ok {
		s = member
	} else if i := strings.LastIndexByte(s, '\\'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, "()")
}

// Equal reports whether f and other name the same element.
func (f Fqsen) Equal(other Fqsen) bool {
	return f.fqsen == other.fqsen
}

// IsZero reports whether f is the zero Fqsen.
func (f Fqsen) IsZero() bool {
	return f.fqsen == ""
}

// String implements [fmt.Stringer].
func (f Fqsen) String() string {
	return f.fqsen
}

func (Fqsen) isReference() {}

// URL is a reference to an external resource, as allowed by @see.
type URL string

// String implements [fmt.Stringer].
func (u URL) String() string {
	return string(u)
}

func (URL) isReference() {}

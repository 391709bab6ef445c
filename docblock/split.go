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
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/doctag/reporter"
	"github.com/bufbuild/doctag/tag"
)

// TabstopWidth is the width of a tab when computing columns.
const TabstopWidth = 4

// RawTag is a tag as it appears in a comment, before its body is parsed.
type RawTag struct {
	// Name without the leading @.
	Name string
	// Everything after the name, continuation lines included. Lines are
	// joined with "\n" and the result is trimmed.
	Body string
	// Location of the @.
	Pos reporter.Pos
}

// Split separates a doc comment into its free text and its tags.
//
// If the comment opens with "/**", the comment markers and the "*" gutter of
// each line are removed. A line whose first non-space character is an @
// followed by a valid tag name starts a tag; the lines up to the next tag
// continue its body. Lines before the first tag make up the text.
func Split(comment string) (string, []RawTag) {
	comment = strings.ReplaceAll(comment, "\r\n", "\n")
	lines := strings.Split(comment, "\n")
	doc := strings.HasPrefix(strings.TrimLeftFunc(comment, unicode.IsSpace), "/**")

	var (
		text   []string
		raw    []RawTag
		bodies [][]string
	)
	last := len(lines) - 1
	if doc {
		// Trailing newlines after the closing marker.
		for last > 0 && strings.TrimSpace(lines[last]) == "" {
			last--
		}
		lines = lines[:last+1]
	}
	for i, line := range lines {
		start, end := 0, len(line)
		if doc {
			start = gutter(line, i == 0)
			if i == last {
				if j := strings.LastIndex(line[start:], "*/"); j >= 0 {
					end = start + j
				}
			}
		}
		content := line[start:end]

		if name, rest, ok := tagLine(content); ok {
			indent := len(content) - len(strings.TrimLeftFunc(content, unicode.IsSpace))
			raw = append(raw, RawTag{
				Name: name,
				Pos:  reporter.Pos{Line: i + 1, Col: width(line[:start+indent]) + 1},
			})
			bodies = append(bodies, []string{rest})
			continue
		}
		if n := len(bodies); n > 0 {
			bodies[n-1] = append(bodies[n-1], content)
			continue
		}
		text = append(text, content)
	}

	for i := range raw {
		raw[i].Body = strings.TrimSpace(strings.Join(bodies[i], "\n"))
	}
	return strings.TrimSpace(strings.Join(text, "\n")), raw
}

// gutter returns the length of the comment decoration at the start of line:
// the opening "/**" on the first line, a leading "*" on the others, plus one
// following space.
func gutter(line string, first bool) int {
	i := len(line) - len(strings.TrimLeft(line, " \t"))
	rest := line[i:]
	switch {
	case first && strings.HasPrefix(rest, "/**"):
		i += len("/**")
	case !first && strings.HasPrefix(rest, "*") && !strings.HasPrefix(rest, "*/"):
		i++
	default:
		return 0
	}
	if strings.HasPrefix(line[i:], " ") {
		i++
	}
	return i
}

// tagLine recognizes a line that starts a tag. The name ends at whitespace,
// or at a '(' or '{' that starts the body, as in @Annotation(key="value").
func tagLine(content string) (name, body string, ok bool) {
	s := strings.TrimLeftFunc(content, unicode.IsSpace)
	if !strings.HasPrefix(s, "@") {
		return "", "", false
	}
	s = s[1:]
	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == '{'
	})
	if end < 0 {
		end = len(s)
	}
	if !tag.ValidName(s[:end]) {
		return "", "", false
	}
	return s[:end], strings.TrimSpace(s[end:]), true
}

// width is the display width of s, with tabs advancing to the next multiple
// of TabstopWidth.
func width(s string) int {
	column := 0
	for i, chunk := range strings.Split(s, "\t") {
		if i > 0 {
			column += TabstopWidth - column%TabstopWidth
		}
		column += uniseg.StringWidth(chunk)
	}
	return column
}

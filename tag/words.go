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
	"strings"
	"unicode"
	"unicode/utf8"
)

// word is a run of non-space text together with the whitespace that follows
// it, so that a tail of words can be reassembled exactly.
type word struct {
	text, space string
}

// splitWords tokenizes s, ignoring leading whitespace.
func splitWords(s string) []word {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	var words []word
	for s != "" {
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		text := s[:end]
		s = s[end:]

		end = strings.IndexFunc(s, isNotSpace)
		if end < 0 {
			end = len(s)
		}
		words = append(words, word{text: text, space: s[:end]})
		s = s[end:]
	}
	return words
}

// joinWords reassembles words, dropping trailing whitespace.
func joinWords(words []word) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w.text)
		b.WriteString(w.space)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// typeWords returns the type expression at the start of words and how many
// words it spans. Words are joined while brackets are open, so that
// "array<int, string>" is a single expression. If the brackets never
// balance, only the first word is taken.
func typeWords(words []word) (string, int) {
	var b strings.Builder
	depth := 0
	for i, w := range words {
		for _, r := range w.text {
			switch r {
			case '<', '(', '{', '[':
				depth++
			case '>', ')', '}', ']':
				depth--
			}
		}
		b.WriteString(w.text)
		if depth <= 0 {
			return b.String(), i + 1
		}
		b.WriteString(w.space)
	}
	return words[0].text, 1
}

// typeShaped reports whether tok can start a type expression, as opposed to
// being the first word of a description.
func typeShaped(tok string) bool {
	if tok == "$this" || strings.HasPrefix(tok, "$this|") || strings.HasPrefix(tok, "$this[") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r == '\\' || r == '?' || r == '(' || r == '_' || unicode.IsLetter(r)
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

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
	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/types"
)

// Return is a @return tag.
type Return struct {
	typ  types.Type
	desc *description.Description
}

// NewReturn returns a @return tag. typ and desc may be nil.
func NewReturn(typ types.Type, desc *description.Description) *Return {
	return &Return{typ: typ, desc: desc}
}

// CreateReturn parses the body of a @return tag.
func CreateReturn(body string, cfg Config) (*Return, error) {
	typ, desc, err := parseTyped("return", body, cfg)
	if err != nil {
		return nil, err
	}
	return NewReturn(typ, desc), nil
}

func (*Return) Name() string { return "return" }

// Type returns the returned type, or nil if the tag does not name one.
func (t *Return) Type() types.Type { return t.typ }

func (t *Return) Description() *description.Description { return t.desc }

func (t *Return) String() string {
	return joinParts(typeString(t.typ), t.desc.Render())
}

// Throws is a @throws tag.
type Throws struct {
	typ  types.Type
	desc *description.Description
}

// NewThrows returns a @throws tag. typ and desc may be nil.
func NewThrows(typ types.Type, desc *description.Description) *Throws {
	return &Throws{typ: typ, desc: desc}
}

// CreateThrows parses the body of a @throws tag.
func CreateThrows(body string, cfg Config) (*Throws, error) {
	typ, desc, err := parseTyped("throws", body, cfg)
	if err != nil {
		return nil, err
	}
	return NewThrows(typ, desc), nil
}

func (*Throws) Name() string { return "throws" }

// Type returns the thrown type, or nil if the tag does not name one.
func (t *Throws) Type() types.Type { return t.typ }

func (t *Throws) Description() *description.Description { return t.desc }

func (t *Throws) String() string {
	return joinParts(typeString(t.typ), t.desc.Render())
}

// parseTyped parses [<type>] [<description>].
//
// The first word is only taken as a type if it is type-shaped; if it is, a
// resolver error is returned rather than falling back to treating the word
// as description text.
func parseTyped(name, body string, cfg Config) (types.Type, *description.Description, error) {
	if blank(body) {
		return nil, nil, emptyBody(name)
	}
	if err := cfg.check(name, needTypes|needDescriptions); err != nil {
		return nil, nil, err
	}
	log := cfg.logger(name)

	words := splitWords(body)
	var typ types.Type
	if typeShaped(words[0].text) {
		expr, n := typeWords(words)
		t, err := cfg.TypeResolver.Resolve(expr, cfg.Context)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("type", expr).Msg("consumed type expression")
		typ, words = t, words[n:]
	} else {
		log.Debug().Str("word", words[0].text).Msg("no type expression")
	}
	return typ, cfg.DescriptionFactory.Create(joinWords(words), cfg.Context), nil
}

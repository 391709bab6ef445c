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
	"regexp"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
)

var urlPattern = regexp.MustCompile(`^\w+://\w`)

// Covers is a @covers tag, naming the element a test covers.
type Covers struct {
	ref  symbol.Fqsen
	desc *description.Description
}

// NewCovers returns a @covers tag.
func NewCovers(ref symbol.Fqsen, desc *description.Description) *Covers {
	return &Covers{ref: ref, desc: desc}
}

// CreateCovers parses the body of a @covers tag.
func CreateCovers(body string, cfg Config) (*Covers, error) {
	ref, rest, err := splitReference("covers", body, cfg)
	if err != nil {
		return nil, err
	}
	fqsen, err := cfg.ReferenceResolver.Resolve(ref, cfg.Context)
	if err != nil {
		return nil, err
	}
	return NewCovers(fqsen, cfg.DescriptionFactory.Create(rest, cfg.Context)), nil
}

func (*Covers) Name() string { return "covers" }

// Reference returns the covered element.
func (t *Covers) Reference() symbol.Fqsen { return t.ref }

func (t *Covers) Description() *description.Description { return t.desc }

func (t *Covers) String() string {
	return joinParts(t.ref.String(), t.desc.Render())
}

// Uses is a @uses tag, naming an element the documented element depends on.
type Uses struct {
	ref  symbol.Fqsen
	desc *description.Description
}

// NewUses returns a @uses tag.
func NewUses(ref symbol.Fqsen, desc *description.Description) *Uses {
	return &Uses{ref: ref, desc: desc}
}

// CreateUses parses the body of a @uses tag.
func CreateUses(body string, cfg Config) (*Uses, error) {
	ref, rest, err := splitReference("uses", body, cfg)
	if err != nil {
		return nil, err
	}
	fqsen, err := cfg.ReferenceResolver.Resolve(ref, cfg.Context)
	if err != nil {
		return nil, err
	}
	return NewUses(fqsen, cfg.DescriptionFactory.Create(rest, cfg.Context)), nil
}

func (*Uses) Name() string { return "uses" }

// Reference returns the used element.
func (t *Uses) Reference() symbol.Fqsen { return t.ref }

func (t *Uses) Description() *description.Description { return t.desc }

func (t *Uses) String() string {
	return joinParts(t.ref.String(), t.desc.Render())
}

// See is a @see tag. Its reference is either an element ([symbol.Fqsen]) or
// a [symbol.URL].
type See struct {
	ref  symbol.Reference
	desc *description.Description
}

// NewSee returns a @see tag. A nil ref renders as the description alone.
func NewSee(ref symbol.Reference, desc *description.Description) *See {
	return &See{ref: ref, desc: desc}
}

// CreateSee parses the body of a @see tag. A reference that looks like a URL
// ("scheme://...") is kept verbatim; anything else goes to the reference
// resolver.
func CreateSee(body string, cfg Config) (*See, error) {
	ref, rest, err := splitReference("see", body, cfg)
	if err != nil {
		return nil, err
	}
	desc := cfg.DescriptionFactory.Create(rest, cfg.Context)
	if urlPattern.MatchString(ref) {
		log := cfg.logger("see")
		log.Debug().Str("url", ref).Msg("reference is a URL")
		return NewSee(symbol.URL(ref), desc), nil
	}
	fqsen, err := cfg.ReferenceResolver.Resolve(ref, cfg.Context)
	if err != nil {
		return nil, err
	}
	return NewSee(fqsen, desc), nil
}

func (*See) Name() string { return "see" }

// Reference returns what the tag points at.
func (t *See) Reference() symbol.Reference { return t.ref }

func (t *See) Description() *description.Description { return t.desc }

func (t *See) String() string {
	var ref string
	if t.ref != nil {
		ref = t.ref.String()
	}
	return joinParts(ref, t.desc.Render())
}

// splitReference validates the inputs of a reference tag factory and splits
// body on its first run of whitespace.
func splitReference(name, body string, cfg Config) (ref, rest string, err error) {
	if blank(body) {
		return "", "", emptyBody(name)
	}
	if err := cfg.check(name, needReferences|needDescriptions); err != nil {
		return "", "", err
	}
	words := splitWords(body)
	return words[0].text, joinWords(words[1:]), nil
}

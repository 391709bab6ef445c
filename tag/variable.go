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

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/types"
)

// variable holds the fields shared by all tags of the form
// [<type>] [$<variable>] [<description>].
type variable struct {
	typ  types.Type
	name string
	desc *description.Description
}

// Type returns the variable's type, or nil if the tag does not name one.
func (v *variable) Type() types.Type { return v.typ }

// VariableName returns the variable name without its $ sigil. It is empty if
// the tag does not name a variable.
func (v *variable) VariableName() string { return v.name }

func (v *variable) Description() *description.Description { return v.desc }

func (v *variable) String() string {
	var name string
	if v.name != "" {
		name = "$" + v.name
	}
	return joinParts(typeString(v.typ), name, v.desc.Render())
}

// Param is a @param tag.
type Param struct{ variable }

// NewParam returns a @param tag. typ and desc may be nil.
func NewParam(name string, typ types.Type, desc *description.Description) *Param {
	return &Param{variable{typ: typ, name: name, desc: desc}}
}

// CreateParam parses the body of a @param tag.
func CreateParam(body string, cfg Config) (*Param, error) {
	v, err := parseVariable("param", body, cfg)
	if err != nil {
		return nil, err
	}
	return &Param{v}, nil
}

func (*Param) Name() string { return "param" }

// Var is a @var tag.
type Var struct{ variable }

// NewVar returns a @var tag. typ and desc may be nil.
func NewVar(name string, typ types.Type, desc *description.Description) *Var {
	return &Var{variable{typ: typ, name: name, desc: desc}}
}

// CreateVar parses the body of a @var tag.
func CreateVar(body string, cfg Config) (*Var, error) {
	v, err := parseVariable("var", body, cfg)
	if err != nil {
		return nil, err
	}
	return &Var{v}, nil
}

func (*Var) Name() string { return "var" }

// Property is a @property tag, declaring a magic read-write property.
type Property struct{ variable }

// NewProperty returns a @property tag. typ and desc may be nil.
func NewProperty(name string, typ types.Type, desc *description.Description) *Property {
	return &Property{variable{typ: typ, name: name, desc: desc}}
}

// CreateProperty parses the body of a @property tag.
func CreateProperty(body string, cfg Config) (*Property, error) {
	v, err := parseVariable("property", body, cfg)
	if err != nil {
		return nil, err
	}
	return &Property{v}, nil
}

func (*Property) Name() string { return "property" }

// PropertyRead is a @property-read tag, declaring a magic read-only
// property.
type PropertyRead struct{ variable }

// NewPropertyRead returns a @property-read tag. typ and desc may be nil.
func NewPropertyRead(name string, typ types.Type, desc *description.Description) *PropertyRead {
	return &PropertyRead{variable{typ: typ, name: name, desc: desc}}
}

// CreatePropertyRead parses the body of a @property-read tag.
func CreatePropertyRead(body string, cfg Config) (*PropertyRead, error) {
	v, err := parseVariable("property-read", body, cfg)
	if err != nil {
		return nil, err
	}
	return &PropertyRead{v}, nil
}

func (*PropertyRead) Name() string { return "property-read" }

// PropertyWrite is a @property-write tag, declaring a magic write-only
// property.
type PropertyWrite struct{ variable }

// NewPropertyWrite returns a @property-write tag. typ and desc may be nil.
func NewPropertyWrite(name string, typ types.Type, desc *description.Description) *PropertyWrite {
	return &PropertyWrite{variable{typ: typ, name: name, desc: desc}}
}

// CreatePropertyWrite parses the body of a @property-write tag.
func CreatePropertyWrite(body string, cfg Config) (*PropertyWrite, error) {
	v, err := parseVariable("property-write", body, cfg)
	if err != nil {
		return nil, err
	}
	return &PropertyWrite{v}, nil
}

func (*PropertyWrite) Name() string { return "property-write" }

// parseVariable parses [<type>] [$<variable>] [<description>]:
//
//  1. a first word without the $ sigil is a type expression, and must
//     resolve;
//  2. a following word with the sigil is the variable; a lone "$" is not;
//  3. everything left, whitespace included, is the description.
func parseVariable(name, body string, cfg Config) (variable, error) {
	if blank(body) {
		return variable{}, emptyBody(name)
	}
	if err := cfg.check(name, needTypes|needDescriptions); err != nil {
		return variable{}, err
	}
	log := cfg.logger(name)

	var v variable
	words := splitWords(body)
	if !strings.HasPrefix(words[0].text, "$") {
		expr, n := typeWords(words)
		typ, err := cfg.TypeResolver.Resolve(expr, cfg.Context)
		if err != nil {
			return variable{}, err
		}
		log.Debug().Str("type", expr).Msg("consumed type expression")
		v.typ, words = typ, words[n:]
	}
	if len(words) > 0 && len(words[0].text) > 1 && strings.HasPrefix(words[0].text, "$") {
		v.name = words[0].text[1:]
		words = words[1:]
		log.Debug().Str("variable", v.name).Msg("consumed variable")
	}
	v.desc = cfg.DescriptionFactory.Create(joinWords(words), cfg.Context)
	return v, nil
}

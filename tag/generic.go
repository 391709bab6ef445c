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
	"fmt"
	"regexp"

	"github.com/bufbuild/doctag/description"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_\\][A-Za-z0-9_\-:\\]*$`)

// ValidName reports whether name can be the name of a tag.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Generic is a tag with no grammar of its own: everything after the name is
// description. Tags without a registered factory parse as Generic.
type Generic struct {
	name string
	desc *description.Description
}

// NewGeneric returns a tag named name. It fails with [ErrInvalidName] if
// name is not a valid tag name.
func NewGeneric(name string, desc *description.Description) (*Generic, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return &Generic{name: name, desc: desc}, nil
}

// CreateGeneric parses body as the description of a tag named name. Unlike
// the other factories it accepts an empty body, since tags such as
// @internal or @api usually have none.
func CreateGeneric(name, body string, cfg Config) (*Generic, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if err := cfg.check(name, needDescriptions); err != nil {
		return nil, err
	}
	return NewGeneric(name, cfg.DescriptionFactory.Create(body, cfg.Context))
}

func (t *Generic) Name() string { return t.name }

func (t *Generic) Description() *description.Description { return t.desc }

func (t *Generic) String() string { return t.desc.Render() }

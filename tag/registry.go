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
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/tidwall/btree"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/doctag/description"
	"github.com/bufbuild/doctag/symbol"
)

// Creator parses the body of a tag named name.
type Creator func(name, body string, cfg Config) (Tag, error)

// creator adapts a kind's factory to a [Creator].
func creator[T Tag](create func(string, Config) (T, error)) Creator {
	return func(_, body string, cfg Config) (Tag, error) {
		t, err := create(body, cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

var builtins = map[string]Creator{
	"covers":         creator(CreateCovers),
	"param":          creator(CreateParam),
	"property":       creator(CreateProperty),
	"property-read":  creator(CreatePropertyRead),
	"property-write": creator(CreatePropertyWrite),
	"return":         creator(CreateReturn),
	"see":            creator(CreateSee),
	"throws":         creator(CreateThrows),
	"uses":           creator(CreateUses),
	"var":            creator(CreateVar),
}

// Registry maps tag names to the creators that parse them. Names without a
// creator parse as [Generic] tags.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	creators btree.Map[string, Creator]
	aliases  map[string]string
}

// NewRegistry returns a registry of all built-in tag kinds.
//
// The zero Registry is empty: every tag parses as [Generic].
func NewRegistry() *Registry {
	r := new(Registry)
	for name, c := range builtins {
		r.creators.Set(name, c)
	}
	return r
}

// Register installs c as the creator for name, replacing any creator or
// alias previously registered under that name.
func (r *Registry) Register(name string, c Creator) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if c == nil {
		return fmt.Errorf("register @%s: nil creator", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.aliases, name)
	r.creators.Set(name, c)
	return nil
}

// Alias makes alias parse like target, e.g. "phpstan-return" like "return".
// The created tags carry target's name. target must have a creator.
func (r *Registry) Alias(alias, target string) error {
	if !ValidName(alias) {
		return fmt.Errorf("%w: %q", ErrInvalidName, alias)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creators.Get(target); !ok {
		return fmt.Errorf("alias @%s: no creator registered for @%s", alias, target)
	}
	if _, ok := r.creators.Get(alias); ok {
		return fmt.Errorf("alias @%s: name already has a creator", alias)
	}
	if r.aliases == nil {
		r.aliases = make(map[string]string)
	}
	r.aliases[alias] = target
	return nil
}

// LoadAliases reads aliases from a YAML document of the form
//
//	aliases:
//	  phpstan-return: return
//	  psalm-param: param
//
// An empty document is not an error. Aliases are applied in name order and
// loading stops at the first one that fails.
func (r *Registry) LoadAliases(in io.Reader) error {
	var doc struct {
		Aliases map[string]string `yaml:"aliases"`
	}
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("load tag aliases: %w", err)
	}

	names := make([]string, 0, len(doc.Aliases))
	for alias := range doc.Aliases {
		names = append(names, alias)
	}
	slices.Sort(names)
	for _, alias := range names {
		if err := r.Alias(alias, doc.Aliases[alias]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the creator for name, following aliases. The second result
// is the canonical name.
func (r *Registry) Lookup(name string) (Creator, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	c, ok := r.creators.Get(name)
	return c, name, ok
}

// Names returns the names that have a creator, in sorted order. Aliases are
// not included.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, r.creators.Len())
	r.creators.Scan(func(name string, _ Creator) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Create parses body with the creator registered for name, or as a
// [Generic] tag if there is none.
func (r *Registry) Create(name, body string, cfg Config) (Tag, error) {
	c, canonical, ok := r.Lookup(name)
	if !ok {
		t, err := CreateGeneric(name, body, cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return c(canonical, body, cfg)
}

// Inline returns a function that creates inline tags for
// [description.Factory], using cfg with the context replaced by the one
// the description is created in.
func (r *Registry) Inline(cfg Config) description.InlineFunc {
	return func(name, body string, ctx *symbol.Context) (description.Inline, error) {
		cfg := cfg
		cfg.Context = ctx
		t, err := r.Create(name, body, cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

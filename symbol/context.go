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

import "strings"

// Context is the naming environment a tag is parsed in: the namespace of the
// documented element and the aliases imported into its file.
//
// A Context is immutable once constructed. A nil *Context is valid and
// describes the global namespace with no aliases.
type Context struct {
	namespace string
	// Keyed by lowercased alias; values are fully qualified with a leading
	// backslash.
	aliases map[string]string
}

// NewContext returns a context for the given namespace and alias table. The
// alias table maps a short name (as used in source) to the name it imports,
// e.g. "Assert" => `Webmozart\Assert\Assert`. The map is copied.
func NewContext(namespace string, aliases map[string]string) *Context {
	c := &Context{
		namespace: strings.Trim(namespace, `\`),
		aliases:   make(map[string]string, len(aliases)),
	}
	for alias, name := range aliases {
		c.aliases[strings.ToLower(alias)] = `\` + strings.TrimLeft(name, `\`)
	}
	return c
}

// Namespace returns the namespace without leading or trailing separators.
// The global namespace is "".
func (c *Context) Namespace() string {
	if c == nil {
		return ""
	}
	return c.namespace
}

// Alias looks up the fully qualified name imported as alias. Aliases are
// matched case-insensitively.
func (c *Context) Alias(alias string) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.aliases[strings.ToLower(alias)]
	return name, ok
}

// Qualify returns the fully qualified form of a class-like name. Names with a
// leading backslash are returned as is; otherwise the first segment is
// looked up among the aliases, and failing that the name is taken to be
// relative to the namespace.
func (c *Context) Qualify(name string) string {
	if strings.HasPrefix(name, `\`) {
		return name
	}
	head, rest, nested := strings.Cut(name, `\`)
	if fq, ok := c.Alias(head); ok {
		if nested {
			return fq + `\` + rest
		}
		return fq
	}
	if ns := c.Namespace(); ns != "" {
		return `\` + ns + `\` + name
	}
	return `\` + name
}

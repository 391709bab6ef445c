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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReference is matched by every error [Resolver] returns.
var ErrInvalidReference = errors.New("invalid reference")

// SyntaxError describes a reference expression that cannot be resolved.
type SyntaxError struct {
	Expr   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Expr, e.Reason)
}

// Unwrap returns [ErrInvalidReference].
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidReference
}

// Resolver resolves textual references such as `Foo`, `Foo::bar()`,
// `\Bar\Foo::$baz` or `helper()` into fully qualified names.
//
// The zero value is ready to use and safe for concurrent use.
type Resolver struct{}

// Resolve qualifies expr against ctx. The class part is qualified with
// [Context.Qualify]; a member part after "::" is kept verbatim but must be a
// constant, method or property name.
func (Resolver) Resolve(expr string, ctx *Context) (Fqsen, error) {
	if expr == "" {
		return Fqsen{}, &SyntaxError{Expr: expr, Reason: "empty reference"}
	}
	class, member, isMember := strings.Cut(expr, "::")
	if class == "" || strings.HasSuffix(class, `\`) {
		return Fqsen{}, &SyntaxError{Expr: expr, Reason: "missing class or function name"}
	}

	name := ctx.Qualify(class)
	if isMember {
		name += "::" + member
	}
	fqsen, err := NewFqsen(name)
	if err != nil {
		return Fqsen{}, &SyntaxError{Expr: expr, Reason: fmt.Sprintf("resolved to malformed name %q", name)}
	}
	return fqsen, nil
}

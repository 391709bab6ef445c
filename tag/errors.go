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
)

var (
	// ErrEmptyBody is returned by factories that require a body when given
	// an empty (or all-whitespace) one.
	ErrEmptyBody = errors.New("tag body is empty")
	// ErrInvalidName is returned for tag names that are not of the form
	// [A-Za-z_\][A-Za-z0-9_\-:\]*.
	ErrInvalidName = errors.New("invalid tag name")
	// ErrMisconfigured is matched by every [ConfigError].
	ErrMisconfigured = errors.New("tag factory is misconfigured")
)

// ConfigError reports that a factory was called without a collaborator it
// requires. It indicates a programming error in the caller, not bad input.
type ConfigError struct {
	// The tag being created.
	Tag string
	// The missing collaborator, e.g. "type resolver".
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("@%s: no %s configured", e.Tag, e.Missing)
}

// Unwrap returns [ErrMisconfigured].
func (e *ConfigError) Unwrap() error {
	return ErrMisconfigured
}

func emptyBody(name string) error {
	return fmt.Errorf("@%s: %w", name, ErrEmptyBody)
}

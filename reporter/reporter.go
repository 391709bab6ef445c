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

// Package reporter contains the types used for reporting errors found while
// parsing doc comments.
package reporter

import (
	"errors"
	"fmt"
	"sync"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, parsing aborts with that error. If the reporter
// returns nil, parsing continues with the next tag, so that as many errors as
// possible are found.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// describe tags that parsed but are suspect, such as tags with no registered
// kind.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings found while parsing.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter builds a Reporter from functions. A nil errs makes the first
// error abort parsing; a nil warnings drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler routes the errors of one parse to a Reporter and remembers the
// outcome. It is safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler returns a handler for rep. A nil rep fails on the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports a formatted error at pos. It returns non-nil once the
// reporter has asked to abort.
func (h *Handler) HandleErrorf(pos Pos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError reports err. Errors without a position abort immediately,
// without going through the reporter.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports err as a warning at pos.
func (h *Handler) HandleWarning(pos Pos, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reporter.Warning(errorWithPos{pos: pos, underlying: err})
}

// HandleWarningf reports a formatted warning at pos.
func (h *Handler) HandleWarningf(pos Pos, format string, args ...any) {
	h.HandleWarning(pos, fmt.Errorf(format, args...))
}

// Error returns the error that aborted parsing, or [ErrInvalidComment] if
// errors were reported but the reporter let parsing continue.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidComment
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

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

package doctag

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/doctag/docblock"
	"github.com/bufbuild/doctag/reporter"
	"github.com/bufbuild/doctag/tag"
)

var defaultRegistry = tag.NewRegistry()

// Parser turns doc comments into [docblock.Block] values.
//
// Parsing a comment involves three steps:
//  1. Splitting the comment into free text and raw tags.
//  2. Looking up each tag's kind in the registry.
//  3. Parsing each tag's body with the collaborators in the configuration.
//
// The zero value is ready to use. A Parser is safe for concurrent use as long
// as its fields are not modified.
type Parser struct {
	// The tag kinds to recognize. If unspecified, all built-in kinds are
	// recognized.
	Registry *tag.Registry
	// Collaborators used to parse tag bodies, and the context that names are
	// resolved in. Collaborators left nil are filled in as by
	// [DefaultConfig].
	Config tag.Config
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the parse after encountering any
	// error and ignores all warnings.
	Reporter reporter.Reporter
	// The maximum parallelism to use in ParseAll. If unspecified or set to a
	// non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// Receives debug logs. Also used by the tag factories when Config.Logger
	// is nil. If unspecified, nothing is logged.
	Logger *zerolog.Logger
}

// Parse parses one doc comment.
//
// Tags that fail to parse are passed to the reporter and left out of the
// block. If the reporter lets parsing continue, Parse returns the block of
// the tags that did parse along with [reporter.ErrInvalidComment].
func (p *Parser) Parse(comment string) (*docblock.Block, error) {
	r := p.newRun(reporter.NewHandler(p.Reporter))
	block, err := r.parse(comment, "")
	if err != nil {
		return block, err
	}
	return block, r.h.Error()
}

// ParseAll parses many doc comments in parallel. The blocks are returned in
// the order of comments. Reported errors are prefixed with the index of the
// comment they occur in.
//
// As with Parse, if the reporter lets parsing continue after errors, the
// blocks are returned along with [reporter.ErrInvalidComment]. If parsing
// aborts, or ctx is done, no blocks are returned.
func (p *Parser) ParseAll(ctx context.Context, comments ...string) ([]*docblock.Block, error) {
	if len(comments) == 0 {
		return nil, nil
	}

	par := p.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	r := p.newRun(reporter.NewHandler(p.Reporter))
	sem := semaphore.NewWeighted(int64(par))
	grp, grpCtx := errgroup.WithContext(ctx)
	blocks := make([]*docblock.Block, len(comments))
	for i, comment := range comments {
		if err := sem.Acquire(grpCtx, 1); err != nil {
			break
		}
		grp.Go(func() error {
			defer sem.Release(1)
			if err := grpCtx.Err(); err != nil {
				return err
			}
			block, err := r.parse(comment, fmt.Sprintf("comment %d: ", i))
			blocks[i] = block
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return blocks, r.h.Error()
}

// run holds the state shared by the comments of one Parse or ParseAll call.
type run struct {
	reg *tag.Registry
	cfg tag.Config
	h   *reporter.Handler
	log *zerolog.Logger
}

func (p *Parser) newRun(h *reporter.Handler) *run {
	log := p.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	reg := p.Registry
	if reg == nil {
		reg = defaultRegistry
	}
	cfg := p.Config
	if cfg.Logger == nil {
		cfg.Logger = p.Logger
	}
	return &run{reg: reg, cfg: withDefaults(reg, cfg), h: h, log: log}
}

// parse parses comment, reporting tag errors to the handler with the given
// prefix. It returns an error only if parsing must abort.
func (r *run) parse(comment, prefix string) (*docblock.Block, error) {
	text, raw := docblock.Split(comment)
	block := &docblock.Block{Text: text}
	for _, rt := range raw {
		if _, _, ok := r.reg.Lookup(rt.Name); !ok {
			r.h.HandleWarningf(rt.Pos, "%sunknown tag @%s, parsed as generic", prefix, rt.Name)
		}
		t, err := r.reg.Create(rt.Name, rt.Body, r.cfg)
		if errors.Is(err, tag.ErrMisconfigured) {
			// Not a problem with the comment.
			return block, r.h.HandleError(err)
		}
		if err != nil {
			if err := r.h.HandleErrorf(rt.Pos, "%s@%s %q: %w", prefix, rt.Name, rt.Body, err); err != nil {
				return block, err
			}
			continue
		}
		block.Tags = append(block.Tags, t)
	}
	r.log.Debug().
		Int("raw_tags", len(raw)).
		Int("tags", len(block.Tags)).
		Msg("parsed doc comment")
	return block, nil
}

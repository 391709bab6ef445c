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

// Package doctag provides the entry point for parsing PHP-style doc
// comments, such as
//
//	/**
//	 * Sums two numbers.
//	 *
//	 * @param int $a The first operand
//	 * @return int
//	 */
//
// into structured tags. Parsing happens in phases, each of which is also
// available on its own:
//
//  1. Split the comment into free text and raw "@name body" tags.
//     Also see: docblock.Split
//  2. Find the kind of each tag by name.
//     Also see: tag.Registry
//  3. Parse each tag body into an immutable value, resolving type
//     expressions, references and inline tags in a namespace context.
//     Also see: tag.CreateParam, types.Resolver, symbol.Resolver,
//     description.Factory
//
// # Parser
//
// A [Parser] accepts comments and produces [docblock.Block] values. All of
// its fields are optional. A minimal Parser, which recognizes the built-in
// tag kinds, resolves names in the global namespace and fails at the first
// malformed tag, is simply:
//
//	var parser doctag.Parser
//	block, err := parser.Parse(comment)
//
// Names are resolved relative to Config.Context, built with
// [symbol.NewContext] from the namespace and the imports of the file the
// comment appears in. A custom [reporter.Reporter] can collect every error
// instead of stopping at the first one, and ParseAll parses many comments
// in parallel.
package doctag

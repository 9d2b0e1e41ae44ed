// Copyright 2024 The Sitemark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sitemark

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind is an enumeration of values returned by [Classify].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	HeadingKind
	CodeBlockKind
	QuoteKind
	UnorderedListKind
	OrderedListKind
)

func (kind BlockKind) String() string {
	switch kind {
	case ParagraphKind:
		return "Paragraph"
	case HeadingKind:
		return "Heading"
	case CodeBlockKind:
		return "CodeBlock"
	case QuoteKind:
		return "Quote"
	case UnorderedListKind:
		return "UnorderedList"
	case OrderedListKind:
		return "OrderedList"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint16(kind))
	}
}

// BlockType is the structural type of a block.
// Level is the heading level (1-6) for [HeadingKind] blocks
// and zero otherwise.
type BlockType struct {
	Kind  BlockKind
	Level int
}

func (t BlockType) String() string {
	if t.Kind == HeadingKind {
		return fmt.Sprintf("%v(%d)", t.Kind, t.Level)
	}
	return t.Kind.String()
}

// maxHeadingLevel is the deepest heading level, <h6>.
const maxHeadingLevel = 6

// codeFence is the marker that starts and ends a fenced code block.
const codeFence = "```"

// SplitBlocks splits a document into blocks separated by blank lines.
// Each block is trimmed of surrounding whitespace,
// and blocks that are empty after trimming are dropped.
// Line endings are normalized to "\n".
func SplitBlocks(document string) []string {
	var blocks []string
	for _, part := range strings.Split(normalizeNewlines(document), "\n\n") {
		if part = strings.TrimSpace(part); part != "" {
			blocks = append(blocks, part)
		}
	}
	return blocks
}

// Classify determines the structural type of a block
// as returned by [SplitBlocks].
// Leading indentation on each line is ignored.
// The rules are tried in order and the first match wins:
//
//  1. A heading starts with 1-6 '#' characters followed by a space.
//  2. A code block has at least two lines, the first and last of which start with "```".
//  3. In an unordered list, every line starts with "- ".
//  4. In an ordered list, line i starts with "{i+1}. ".
//  5. In a quote, every line starts with ">".
//
// Anything else is a paragraph.
func Classify(block string) BlockType {
	lines := splitLines(block)
	if strings.TrimSpace(block) == "" {
		return BlockType{Kind: ParagraphKind}
	}
	for i, line := range lines {
		lines[i] = trimIndent(line)
	}

	if h := parseHeading(lines[0]); h.level > 0 {
		return BlockType{Kind: HeadingKind, Level: h.level}
	}
	switch {
	case len(lines) >= 2 &&
		strings.HasPrefix(lines[0], codeFence) &&
		strings.HasPrefix(lines[len(lines)-1], codeFence):
		return BlockType{Kind: CodeBlockKind}
	case allHavePrefix(lines, "- "):
		return BlockType{Kind: UnorderedListKind}
	case isOrderedList(lines):
		return BlockType{Kind: OrderedListKind}
	case allHavePrefix(lines, ">"):
		return BlockType{Kind: QuoteKind}
	default:
		return BlockType{Kind: ParagraphKind}
	}
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList reports whether the lines are numbered 1, 2, 3, ...
// in sequence. Any other numbering is not a list.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedListMarker(i+1)) {
			return false
		}
	}
	return true
}

func orderedListMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

type heading struct {
	level        int // 1-6
	contentStart int
}

// parseHeading attempts to parse the line as a heading.
// The level is zero if the line is not a heading.
// parseHeading assumes that the caller has stripped any leading indentation.
func parseHeading(line string) heading {
	var h heading
	for h.level < len(line) && line[h.level] == '#' {
		h.level++
	}
	if h.level == 0 || h.level > maxHeadingLevel {
		return heading{}
	}

	// Consume required whitespace after the markers.
	i := h.level
	if i >= len(line) || !isSpaceOrTab(line[i]) {
		return heading{}
	}
	for i < len(line) && isSpaceOrTab(line[i]) {
		i++
	}
	h.contentStart = i
	return h
}

// stripListMarker removes the list marker from an indentation-trimmed
// list item line: "- " for unordered items or "N. " for ordered ones.
func stripListMarker(line string, kind BlockKind) string {
	switch kind {
	case UnorderedListKind:
		return strings.TrimPrefix(line, "- ")
	case OrderedListKind:
		if _, item, ok := strings.Cut(line, ". "); ok {
			return item
		}
	}
	return line
}

// stripQuoteMarker removes a leading '>' and the whitespace after it
// from an indentation-trimmed quote line.
func stripQuoteMarker(line string) string {
	if rest, ok := strings.CutPrefix(line, ">"); ok {
		return trimIndent(rest)
	}
	return line
}

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}

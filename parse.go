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

// Package sitemark converts a small dialect of Markdown into HTML
// for static site generation.
//
// A document is split into blocks on blank lines.
// Each block is a heading, fenced code block, quote, unordered list,
// ordered list, or paragraph, and its text may contain
// **bold**, *italic* (or _italic_), `code`, [links](url), and ![images](url).
// Formatting does not nest, and there is no raw HTML, tables, or footnotes.
//
// The output is a tree of [Node] values rooted at a <div>,
// which can be rendered with [Render] or an [HTMLRenderer].
package sitemark

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// ToHTML converts a Markdown document into an HTML string.
// It is equivalent to calling [Parse] followed by [Render].
func ToHTML(markdown string) (string, error) {
	root, err := Parse(markdown)
	if err != nil {
		return "", err
	}
	return Render(root)
}

// Parse converts a Markdown document into an HTML tree.
// The returned node is a <div> containing one element per block,
// in document order.
// An empty document produces a <div> with an empty text child.
//
// Parse fails on the first malformed block;
// it never returns a partial tree.
// A link or image with an empty target, like "[x]()",
// is malformed and fails with [ErrMissingURL].
func Parse(markdown string) (*ParentNode, error) {
	var children []Node
	for i, block := range SplitBlocks(markdown) {
		nodes, err := BlockToHTML(block)
		if err != nil {
			return nil, fmt.Errorf("parse markdown: block %d: %w", i+1, err)
		}
		children = append(children, nodes...)
	}
	if len(children) == 0 {
		children = []Node{Text("")}
	}
	return Parent(atom.Div.String(), children), nil
}

// BlockToHTML converts a single block, as returned by [SplitBlocks],
// into HTML elements.
// It usually returns a single element.
// A heading followed by more lines in the same block
// returns the heading and then the element for the remaining lines,
// as if they had been a separate block.
func BlockToHTML(block string) ([]Node, error) {
	return blockToHTML(block, Classify(block))
}

func blockToHTML(block string, typ BlockType) ([]Node, error) {
	lines := splitLines(block)
	switch typ.Kind {
	case HeadingKind:
		return headingToHTML(lines, typ.Level)
	case CodeBlockKind:
		return []Node{codeBlockToHTML(lines)}, nil
	case QuoteKind:
		parts := make([]string, 0, len(lines))
		for _, line := range lines {
			parts = append(parts, stripQuoteMarker(trimIndent(line)))
		}
		children, err := inlineChildren(strings.Join(parts, " "))
		if err != nil {
			return nil, err
		}
		return []Node{Parent(atom.Blockquote.String(), children)}, nil
	case UnorderedListKind:
		return listToHTML(lines, typ.Kind, atom.Ul)
	case OrderedListKind:
		return listToHTML(lines, typ.Kind, atom.Ol)
	default:
		children, err := inlineChildren(block)
		if err != nil {
			return nil, err
		}
		return []Node{Parent(atom.P.String(), children)}, nil
	}
}

var headingTags = [maxHeadingLevel]atom.Atom{
	atom.H1,
	atom.H2,
	atom.H3,
	atom.H4,
	atom.H5,
	atom.H6,
}

func headingToHTML(lines []string, level int) ([]Node, error) {
	first := trimIndent(lines[0])
	h := parseHeading(first)
	children, err := inlineChildren(first[h.contentStart:])
	if err != nil {
		return nil, err
	}
	nodes := []Node{Parent(headingTags[level-1].String(), children)}

	// Lines after the heading line are rendered as their own block.
	// Headings do not nest, so a second heading becomes a paragraph.
	remainder := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	if remainder == "" {
		return nodes, nil
	}
	typ := Classify(remainder)
	if typ.Kind == HeadingKind {
		typ = BlockType{Kind: ParagraphKind}
	}
	rest, err := blockToHTML(remainder, typ)
	if err != nil {
		return nil, err
	}
	return append(nodes, rest...), nil
}

// codeBlockToHTML renders the lines between the fences verbatim.
// Code is never parsed for inline formatting.
func codeBlockToHTML(lines []string) Node {
	code := strings.Join(lines[1:len(lines)-1], "\n")
	if code != "" {
		code += "\n"
	}
	return Parent(atom.Pre.String(), []Node{Leaf(atom.Code.String(), code)})
}

func listToHTML(lines []string, kind BlockKind, tag atom.Atom) ([]Node, error) {
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		children, err := inlineChildren(stripListMarker(trimIndent(line), kind))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, Parent(atom.Li.String(), children))
	}
	return []Node{Parent(tag.String(), items)}, nil
}

// inlineChildren parses text for inline formatting
// and converts the result to leaf nodes.
// Empty text produces a single empty text node
// so that the enclosing element always has a child.
func inlineChildren(text string) ([]Node, error) {
	spans, err := Tokenize(CollapseLines(text))
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []Node{Text("")}, nil
	}
	children := make([]Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := span.HTMLNode()
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return children, nil
}

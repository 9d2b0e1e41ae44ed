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
	"errors"
	"fmt"
	"io"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// An HTMLRenderer converts [Node] trees into HTML.
// The zero value renders text and attribute values verbatim,
// since node contents are assumed to come from trusted Markdown.
type HTMLRenderer struct {
	// If EscapeText is true, the renderer escapes
	// leaf text and attribute values
	// so that untrusted text cannot introduce markup.
	EscapeText bool
}

// Render returns the HTML serialization of n
// using the default options for [HTMLRenderer].
func Render(n Node) (string, error) {
	b, err := new(HTMLRenderer).AppendNode(nil, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RenderHTML writes the HTML serialization of n to the given writer
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, n Node) error {
	return new(HTMLRenderer).Render(w, n)
}

// Render writes the HTML serialization of n to the given writer.
// Nothing is written if the tree cannot be rendered.
func (r *HTMLRenderer) Render(w io.Writer, n Node) error {
	buf, err := r.AppendNode(nil, n)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// AppendNode appends the rendered HTML of the tree rooted at n to dst
// and returns the resulting byte slice.
// On error, dst is returned unmodified.
func (r *HTMLRenderer) AppendNode(dst []byte, n Node) ([]byte, error) {
	state := &renderState{
		HTMLRenderer: r,
		dst:          dst,
	}
	Walk(n, &WalkOptions{
		Pre:  state.pre,
		Post: state.post,
	})
	if state.err != nil {
		return dst, fmt.Errorf("render html: %w", state.err)
	}
	return state.dst, nil
}

type renderState struct {
	*HTMLRenderer
	dst []byte
	err error
}

func (r *renderState) pre(c *Cursor) bool {
	if r.err != nil {
		return false
	}
	switch n := c.Node().(type) {
	case *LeafNode:
		if n == nil {
			r.err = errNilNode
			return false
		}
		r.leaf(n)
		return false
	case *ParentNode:
		switch {
		case n == nil:
			r.err = errNilNode
			return false
		case n.Tag == "":
			r.err = ErrMissingTag
			return false
		case len(n.Children) == 0:
			r.err = fmt.Errorf("<%s>: %w", n.Tag, ErrEmptyChildren)
			return false
		}
		r.openTag(n.Tag, n.Attrs)
		return true
	case nil:
		r.err = errNilNode
		return false
	default:
		r.err = fmt.Errorf("unsupported node type %T", n)
		return false
	}
}

func (r *renderState) post(c *Cursor) bool {
	if r.err != nil {
		return false
	}
	r.closeTag(c.Node().(*ParentNode).Tag)
	return true
}

var errNilNode = errors.New("nil node")

func (r *renderState) leaf(n *LeafNode) {
	if !n.ValuePresent {
		if n.Tag == "" {
			r.err = ErrMissingValue
		} else {
			r.err = fmt.Errorf("<%s>: %w", n.Tag, ErrMissingValue)
		}
		return
	}
	if n.Tag == "" {
		r.text(n.Value)
		return
	}
	r.openTag(n.Tag, n.Attrs)
	if n.Value == "" && isVoidElement(n.Tag) {
		return
	}
	r.text(n.Value)
	r.closeTag(n.Tag)
}

func (r *renderState) openTag(name string, attrs Attributes) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name...)
	for _, a := range attrs {
		r.dst = append(r.dst, ' ')
		if a.Namespace != "" {
			r.dst = append(r.dst, a.Namespace...)
			r.dst = append(r.dst, ':')
		}
		r.dst = append(r.dst, a.Key...)
		r.dst = append(r.dst, `="`...)
		r.text(a.Val)
		r.dst = append(r.dst, '"')
	}
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(name string) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) text(s string) {
	if !r.EscapeText {
		r.dst = append(r.dst, s...)
		return
	}
	r.dst = append(r.dst, htmlEscaper.Replace([]byte(s))...)
}

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// isVoidElement reports whether the tag names an element
// that cannot have content, like <img>.
// Empty leaves with these tags are rendered without an end tag.
func isVoidElement(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}

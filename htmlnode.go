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

import "golang.org/x/net/html"

// Node is an element of an HTML document tree.
// The two implementations are [*LeafNode] and [*ParentNode].
type Node interface {
	// AppendHTML appends the node's HTML serialization to dst
	// using the default [HTMLRenderer] options.
	AppendHTML(dst []byte) ([]byte, error)
}

// LeafNode is a node that holds text instead of children.
// A LeafNode with an empty Tag renders as its raw Value.
type LeafNode struct {
	Tag   string
	Value string
	// ValuePresent distinguishes an empty Value from a missing one.
	// Rendering a leaf without a value fails with [ErrMissingValue].
	ValuePresent bool
	Attrs        Attributes
}

// Text returns a tagless leaf holding the given text.
func Text(value string) *LeafNode {
	return &LeafNode{Value: value, ValuePresent: true}
}

// Leaf returns a leaf element with the given tag, text, and attributes.
func Leaf(tag, value string, attrs ...html.Attribute) *LeafNode {
	return &LeafNode{
		Tag:          tag,
		Value:        value,
		ValuePresent: true,
		Attrs:        Attributes(attrs),
	}
}

// AppendHTML appends the leaf's HTML to dst.
func (n *LeafNode) AppendHTML(dst []byte) ([]byte, error) {
	return new(HTMLRenderer).AppendNode(dst, n)
}

// ParentNode is an element that contains other nodes.
// A ParentNode must have a tag and at least one child to be rendered.
type ParentNode struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// Parent returns a parent element with the given tag, children, and attributes.
func Parent(tag string, children []Node, attrs ...html.Attribute) *ParentNode {
	return &ParentNode{
		Tag:      tag,
		Children: children,
		Attrs:    Attributes(attrs),
	}
}

// AppendHTML appends the element's HTML to dst.
func (n *ParentNode) AppendHTML(dst []byte) ([]byte, error) {
	return new(HTMLRenderer).AppendNode(dst, n)
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (n *ParentNode) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the i'th child of the node.
func (n *ParentNode) Child(i int) Node {
	return n.Children[i]
}

// Attributes is an ordered set of element attributes.
// Attributes are rendered in insertion order.
type Attributes []html.Attribute

// Get returns the value of the attribute with the given key.
func (attrs Attributes) Get(key string) (val string, ok bool) {
	for _, a := range attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Set sets the value of the attribute with the given key.
// An existing attribute keeps its position;
// a new attribute is added to the end.
func (attrs *Attributes) Set(key, val string) {
	for i := range *attrs {
		if a := &(*attrs)[i]; a.Namespace == "" && a.Key == key {
			a.Val = val
			return
		}
	}
	*attrs = append(*attrs, html.Attribute{Key: key, Val: val})
}

// Equal reports whether two trees are structurally identical:
// same node types, tags, values, attributes (in order), and children.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *LeafNode:
		b, ok := b.(*LeafNode)
		if !ok || a == nil || b == nil {
			return ok && a == b
		}
		return a.Tag == b.Tag &&
			a.Value == b.Value &&
			a.ValuePresent == b.ValuePresent &&
			equalAttrs(a.Attrs, b.Attrs)
	case *ParentNode:
		b, ok := b.(*ParentNode)
		if !ok || a == nil || b == nil {
			return ok && a == b
		}
		if a.Tag != b.Tag || len(a.Children) != len(b.Children) || !equalAttrs(a.Attrs, b.Attrs) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

func equalAttrs(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

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

package sitemark_test

import (
	"fmt"
	"os"

	"golang.org/x/net/html"
	"zombiezen.com/go/sitemark"
)

func Example() {
	out, err := sitemark.ToHTML("# Title\n\n![img](/a.png)\n\n[Home](/)")
	if err != nil {
		// Not expecting an error from this document.
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <div><h1>Title</h1><p><img src="/a.png" alt="img"></p><p><a href="/">Home</a></p></div>
}

func ExampleParse() {
	// Parse the document into a tree of HTML nodes.
	root, err := sitemark.Parse("Hello, **World**!\n\n- one\n- two\n")
	if err != nil {
		panic(err)
	}
	// Render the tree to HTML.
	if err := sitemark.RenderHTML(os.Stdout, root); err != nil {
		panic(err)
	}
	fmt.Println()
	// Output:
	// <div><p>Hello, <strong>World</strong>!</p><ul><li>one</li><li>two</li></ul></div>
}

func ExampleHTMLRenderer() {
	root, err := sitemark.Parse("Use `a < b` to compare & [search](/q?a=1&b=2).")
	if err != nil {
		panic(err)
	}
	r := &sitemark.HTMLRenderer{EscapeText: true}
	if err := r.Render(os.Stdout, root); err != nil {
		panic(err)
	}
	fmt.Println()
	// Output:
	// <div><p>Use <code>a &lt; b</code> to compare &amp; <a href="/q?a=1&amp;b=2">search</a>.</p></div>
}

func ExampleTokenize() {
	spans, err := sitemark.Tokenize("**bold** and *em*")
	if err != nil {
		panic(err)
	}
	for _, span := range spans {
		fmt.Println(span)
	}
	// Output:
	// Bold("bold")
	// Plain(" and ")
	// Italic("em")
}

func ExampleClassify() {
	fmt.Println(sitemark.Classify("## Heading"))
	fmt.Println(sitemark.Classify("1. a\n2. b\n3. c"))
	fmt.Println(sitemark.Classify("1. a\n3. c"))
	// Output:
	// Heading(2)
	// OrderedList
	// Paragraph
}

func ExampleExtractTitle() {
	title, err := sitemark.ExtractTitle("Draft\n\n# Tolkien Fan Club\n\nWelcome!")
	if err != nil {
		panic(err)
	}
	fmt.Println(title)
	// Output:
	// Tolkien Fan Club
}

func ExampleWalk() {
	root := sitemark.Parent("div", []sitemark.Node{
		sitemark.Parent("p", []sitemark.Node{
			sitemark.Leaf("a", "Home", html.Attribute{Key: "href", Val: "/"}),
			sitemark.Text(" and "),
			sitemark.Leaf("a", "Contact", html.Attribute{Key: "href", Val: "/contact"}),
		}),
	})
	// Collect every link target in the tree.
	sitemark.Walk(root, &sitemark.WalkOptions{
		Pre: func(c *sitemark.Cursor) bool {
			if leaf, ok := c.Node().(*sitemark.LeafNode); ok && leaf.Tag == "a" {
				href, _ := leaf.Attrs.Get("href")
				fmt.Println(href)
			}
			return true
		},
	})
	// Output:
	// /
	// /contact
}

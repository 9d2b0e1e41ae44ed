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

// Package htmlcheck inspects rendered HTML fragments in tests
// using a conforming HTML tokenizer.
package htmlcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Check verifies that every start tag in the fragment b
// has a matching end tag in the right order.
// Void elements like <img> must not have end tags.
func Check(b []byte) error {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var open []string
	for {
		switch tok.Next() {
		case html.ErrorToken:
			if err := tok.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			if len(open) > 0 {
				return fmt.Errorf("unclosed <%s>", strings.Join(open, "> <"))
			}
			return nil
		case html.StartTagToken:
			name, _ := tok.TagName()
			if !isVoid(name) {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			if isVoid(name) {
				return fmt.Errorf("end tag for void element <%s>", name)
			}
			if len(open) == 0 {
				return fmt.Errorf("unexpected </%s>", name)
			}
			if top := open[len(open)-1]; top != string(name) {
				return fmt.Errorf("</%s> closes <%s>", name, top)
			}
			open = open[:len(open)-1]
		case html.SelfClosingTagToken:
			name, _ := tok.TagName()
			return fmt.Errorf("self-closing <%s/>", name)
		}
	}
}

// Text returns the unescaped text content of the fragment b.
func Text(b []byte) string {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	sb := new(strings.Builder)
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}

func isVoid(name []byte) bool {
	switch atom.Lookup(name) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}

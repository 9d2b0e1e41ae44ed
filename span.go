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

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SpanKind is an enumeration of values returned by [TextSpan.Kind].
type SpanKind uint16

const (
	PlainKind SpanKind = 1 + iota
	BoldKind
	ItalicKind
	CodeKind
	LinkKind
	ImageKind
)

func (kind SpanKind) String() string {
	switch kind {
	case PlainKind:
		return "Plain"
	case BoldKind:
		return "Bold"
	case ItalicKind:
		return "Italic"
	case CodeKind:
		return "Code"
	case LinkKind:
		return "Link"
	case ImageKind:
		return "Image"
	default:
		return fmt.Sprintf("SpanKind(%d)", uint16(kind))
	}
}

// hasURL reports whether spans of this kind carry a URL.
func (kind SpanKind) hasURL() bool {
	return kind == LinkKind || kind == ImageKind
}

// TextSpan is a run of inline text with a single format.
// URL is only meaningful for [LinkKind] and [ImageKind] spans,
// where Text is the link text or image alt text respectively.
type TextSpan struct {
	Text string
	Kind SpanKind
	URL  string
}

// Plain returns an unformatted span.
func Plain(text string) TextSpan { return TextSpan{Text: text, Kind: PlainKind} }

// Bold returns a strongly emphasized span.
func Bold(text string) TextSpan { return TextSpan{Text: text, Kind: BoldKind} }

// Italic returns an emphasized span.
func Italic(text string) TextSpan { return TextSpan{Text: text, Kind: ItalicKind} }

// Code returns an inline code span.
func Code(text string) TextSpan { return TextSpan{Text: text, Kind: CodeKind} }

// Link returns a hyperlink span.
func Link(text, url string) TextSpan { return TextSpan{Text: text, Kind: LinkKind, URL: url} }

// Image returns an image span with the given alt text.
func Image(alt, url string) TextSpan { return TextSpan{Text: alt, Kind: ImageKind, URL: url} }

func (span TextSpan) String() string {
	if span.Kind.hasURL() {
		return fmt.Sprintf("%v(%q, %q)", span.Kind, span.Text, span.URL)
	}
	return fmt.Sprintf("%v(%q)", span.Kind, span.Text)
}

// Validate checks the span's URL invariant:
// links and images must have a URL,
// and other kinds must not.
func (span TextSpan) Validate() error {
	switch {
	case span.Kind.hasURL() && span.URL == "":
		return fmt.Errorf("%v %q: %w", span.Kind, span.Text, ErrMissingURL)
	case !span.Kind.hasURL() && span.URL != "":
		return fmt.Errorf("%v %q has url %q", span.Kind, span.Text, span.URL)
	default:
		return nil
	}
}

// HTMLNode converts the span into the leaf node that renders it.
func (span TextSpan) HTMLNode() (*LeafNode, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	switch span.Kind {
	case PlainKind:
		return Text(span.Text), nil
	case BoldKind:
		return Leaf(atom.Strong.String(), span.Text), nil
	case ItalicKind:
		return Leaf(atom.Em.String(), span.Text), nil
	case CodeKind:
		return Leaf(atom.Code.String(), span.Text), nil
	case LinkKind:
		return Leaf(atom.A.String(), span.Text,
			html.Attribute{Key: atom.Href.String(), Val: span.URL},
		), nil
	case ImageKind:
		return Leaf(atom.Img.String(), "",
			html.Attribute{Key: atom.Src.String(), Val: span.URL},
			html.Attribute{Key: atom.Alt.String(), Val: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("unknown span kind %v", span.Kind)
	}
}

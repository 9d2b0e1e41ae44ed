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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSplitBlocks(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{
			name:     "Empty",
			document: "",
			want:     nil,
		},
		{
			name:     "Paragraphs",
			document: "Para one.\n\nPara two.",
			want:     []string{"Para one.", "Para two."},
		},
		{
			name:     "MultipleBlankLines",
			document: "A\n\n\nB",
			want:     []string{"A", "B"},
		},
		{
			name:     "SurroundingWhitespace",
			document: "  A  \n\n B ",
			want:     []string{"A", "B"},
		},
		{
			name:     "OnlyWhitespace",
			document: "\n\n   \n\n\t\n",
			want:     nil,
		},
		{
			name:     "CRLF",
			document: "A\r\nstill A\r\n\r\nB\r\n",
			want:     []string{"A\nstill A", "B"},
		},
		{
			name: "Document",
			document: `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line

- This is a list
- with items
`,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SplitBlocks(test.document)
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SplitBlocks(%q) (-want +got):\n%s", test.document, diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	paragraph := BlockType{Kind: ParagraphKind}
	tests := []struct {
		block string
		want  BlockType
	}{
		{"# Heading 1", BlockType{Kind: HeadingKind, Level: 1}},
		{"## Heading 2", BlockType{Kind: HeadingKind, Level: 2}},
		{"###### Heading 6", BlockType{Kind: HeadingKind, Level: 6}},
		{"####### Not a heading", paragraph},
		{"#NoSpace", paragraph},
		{"### Heading ###", BlockType{Kind: HeadingKind, Level: 3}},
		{"   ### Heading with spaces", BlockType{Kind: HeadingKind, Level: 3}},
		{"# Heading\nwith more lines", BlockType{Kind: HeadingKind, Level: 1}},

		{"```\nThis is a proper code block\n```", BlockType{Kind: CodeBlockKind}},
		{"```go\nfunc main() {}\n```", BlockType{Kind: CodeBlockKind}},
		{"```\n```", BlockType{Kind: CodeBlockKind}},
		{"```code block```", paragraph},
		{"```This is a code block without an ending", paragraph},
		{"This is a code block without a starting```", paragraph},
		{"```\nno closing fence", paragraph},

		{"- Item 1\n- Item 2", BlockType{Kind: UnorderedListKind}},
		{"   - Item 1\n   - Item 2", BlockType{Kind: UnorderedListKind}},
		{"- Item 1\n   - Item 2\n- Item 3", BlockType{Kind: UnorderedListKind}},
		{"- Item 1\nItem 2", paragraph},
		{"-Item 1", paragraph},

		{"1. First\n2. Second", BlockType{Kind: OrderedListKind}},
		{"1. a\n2. b\n3. c", BlockType{Kind: OrderedListKind}},
		{"   1. First\n   2. Second", BlockType{Kind: OrderedListKind}},
		{"1. First\n2. Second\n3. Third\n4. Fourth\n5. Fifth\n6. Sixth\n7. Seventh\n8. Eighth\n9. Ninth\n10. Tenth\n11. Eleventh", BlockType{Kind: OrderedListKind}},
		{"1. a\n3. c", paragraph},
		{"2. a\n3. b", paragraph},
		{"1. First\n2. Second\nThree. Third", paragraph},
		{"1.First", paragraph},

		{"> This is a quote", BlockType{Kind: QuoteKind}},
		{"   > This is a quote", BlockType{Kind: QuoteKind}},
		{"> This is a quote\n> that spans multiple lines.", BlockType{Kind: QuoteKind}},
		{">no space", BlockType{Kind: QuoteKind}},
		{"> This is a quote\nThis is not a quote.", paragraph},
		{"> This is a quote\nThis is not a quote.\n> Another quote line.", paragraph},

		{"This is a paragraph.", paragraph},
		{"   This is a paragraph.", paragraph},
		{"", paragraph},
		{"     ", paragraph},
	}
	for _, test := range tests {
		if got := Classify(test.block); got != test.want {
			t.Errorf("Classify(%q) = %v; want %v", test.block, got, test.want)
		}
	}
}

func TestBlockTypeString(t *testing.T) {
	tests := []struct {
		typ  BlockType
		want string
	}{
		{BlockType{Kind: HeadingKind, Level: 2}, "Heading(2)"},
		{BlockType{Kind: OrderedListKind}, "OrderedList"},
		{BlockType{Kind: 99}, "BlockKind(99)"},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("BlockType%+v.String() = %q; want %q", test.typ, got, test.want)
		}
	}
}

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
	"regexp"
	"strings"
)

// delimiterPasses lists the inline delimiters in the order they are applied.
// Earlier passes take precedence: "**" must be split before "*".
var delimiterPasses = []struct {
	delim string
	kind  SpanKind
}{
	{"**", BoldKind},
	{"*", ItalicKind},
	{"_", ItalicKind},
	{"`", CodeKind},
}

// Tokenize converts a line of Markdown inline text into a sequence of spans.
// Callers with multi-line text should pass it through [CollapseLines] first.
//
// Delimiters are applied one at a time in precedence order
// (bold "**", italic "*" and "_", code "`"),
// followed by images and then links.
// Text inside an already formatted span is never reparsed,
// so formatting does not nest.
// A delimiter without a matching closer fails with [*UnterminatedDelimiterError].
// Empty text yields no spans.
// Links and images with an empty target, like "[x]()",
// are returned as spans with an empty URL;
// they fail [TextSpan.Validate] with [ErrMissingURL].
func Tokenize(text string) ([]TextSpan, error) {
	if text == "" {
		return nil, nil
	}
	spans := []TextSpan{Plain(text)}
	for _, pass := range delimiterPasses {
		var err error
		spans, err = SplitDelimiter(spans, pass.delim, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span in spans on delim.
// Text between a pair of delimiters becomes a span of the given kind.
// Spans that are not plain are passed through untouched,
// and empty text is dropped.
func SplitDelimiter(spans []TextSpan, delim string, kind SpanKind) ([]TextSpan, error) {
	var result []TextSpan
	for _, span := range spans {
		if span.Kind != PlainKind || delim == "" {
			result = append(result, span)
			continue
		}
		parts := strings.Split(span.Text, delim)
		if len(parts)%2 == 0 {
			return nil, &UnterminatedDelimiterError{Delimiter: delim, Kind: kind}
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, Plain(part))
			} else {
				result = append(result, TextSpan{Text: part, Kind: kind})
			}
		}
	}
	return result, nil
}

// LinkMatch is a link or image found by [ExtractLinks] or [ExtractImages].
// For images, Text is the alt text.
type LinkMatch struct {
	Text string
	URL  string

	start, end int
}

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// ExtractImages returns the images written as ![alt](url) in text,
// in the order they appear.
func ExtractImages(text string) []LinkMatch {
	return findLinks(text, imagePattern, false)
}

// ExtractLinks returns the links written as [text](url) in text,
// in the order they appear.
// An image's bracketed alt text is not reported as a link.
func ExtractLinks(text string) []LinkMatch {
	return findLinks(text, linkPattern, true)
}

func findLinks(text string, pattern *regexp.Regexp, skipImages bool) []LinkMatch {
	var matches []LinkMatch
	for pos := 0; pos < len(text); {
		loc := pattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if skipImages && start > 0 && text[start-1] == '!' {
			// Resume right after the bracket that looked like a link.
			pos = start + 1
			continue
		}
		matches = append(matches, LinkMatch{
			Text:  text[pos+loc[2] : pos+loc[3]],
			URL:   text[pos+loc[4] : pos+loc[5]],
			start: start,
			end:   pos + loc[1],
		})
		pos += loc[1]
	}
	return matches
}

// SplitImages splits ![alt](url) images out of the plain spans in spans.
func SplitImages(spans []TextSpan) []TextSpan {
	return splitLinkSpans(spans, ImageKind, ExtractImages)
}

// SplitLinks splits [text](url) links out of the plain spans in spans.
func SplitLinks(spans []TextSpan) []TextSpan {
	return splitLinkSpans(spans, LinkKind, ExtractLinks)
}

func splitLinkSpans(spans []TextSpan, kind SpanKind, extract func(string) []LinkMatch) []TextSpan {
	var result []TextSpan
	for i := 0; i < len(spans); {
		if spans[i].Kind != PlainKind {
			result = append(result, spans[i])
			i++
			continue
		}

		// Patterns are matched across a run of adjacent plain spans.
		sb := new(strings.Builder)
		for ; i < len(spans) && spans[i].Kind == PlainKind; i++ {
			sb.WriteString(spans[i].Text)
		}
		text := sb.String()
		prev := 0
		for _, m := range extract(text) {
			if prev < m.start {
				result = append(result, Plain(text[prev:m.start]))
			}
			result = append(result, TextSpan{Text: m.Text, Kind: kind, URL: m.URL})
			prev = m.end
		}
		if prev < len(text) {
			result = append(result, Plain(text[prev:]))
		}
	}
	return result
}

// CollapseLines joins the lines of text with single spaces,
// trimming the whitespace around each line.
// Inline formatting is parsed on the collapsed text,
// so a span may continue across a line break.
func CollapseLines(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}

// splitLines splits text into lines.
// A trailing line terminator does not start a new line,
// and empty text has no lines.
func splitLines(text string) []string {
	text = normalizeNewlines(text)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return newlineReplacer.Replace(text)
}

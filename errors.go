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
)

// Errors reported while building or rendering a document.
// All of them are deterministic: retrying the same input fails the same way.
var (
	// ErrMissingValue is returned when a [LeafNode] without a value is rendered.
	ErrMissingValue = errors.New("leaf node has no value")
	// ErrMissingTag is returned when a [ParentNode] without a tag is rendered.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrEmptyChildren is returned when a [ParentNode] without children is rendered.
	ErrEmptyChildren = errors.New("parent node has no children")
	// ErrMissingURL is returned when a link or image span has no URL.
	ErrMissingURL = errors.New("link or image has no url")
	// ErrNoHeading is returned by [ExtractTitle]
	// when the document has no level-1 heading.
	ErrNoHeading = errors.New("no level-1 heading found")
)

// UnterminatedDelimiterError is returned by [Tokenize]
// when an inline delimiter is opened but never closed.
type UnterminatedDelimiterError struct {
	Delimiter string
	Kind      SpanKind
}

func (e *UnterminatedDelimiterError) Error() string {
	return fmt.Sprintf("unterminated %q delimiter for %v span", e.Delimiter, e.Kind)
}

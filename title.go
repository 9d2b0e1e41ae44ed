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

import "strings"

// ExtractTitle returns the text of the first level-1 heading in a document:
// the first line that starts with a single '#'.
// Unlike [Parse], ExtractTitle does not require a space after the '#'.
// It returns [ErrNoHeading] if there is no such line.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range splitLines(markdown) {
		if rest, ok := strings.CutPrefix(line, "#"); ok && rest != "" && rest[0] != '#' {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", ErrNoHeading
}

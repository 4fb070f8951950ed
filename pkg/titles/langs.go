// Mediacore
// Copyright (c) 2026 The Mediacore Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mediacore.
//
// Mediacore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mediacore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mediacore.  If not, see <http://www.gnu.org/licenses/>.

package titles

import (
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is reported when no language marker is found.
const DefaultLanguage = "en"

// languageVocabulary lists the markers release groups use per language code.
// Order is significant: detected languages are reported in this order.
var languageVocabulary = []struct {
	code    string
	pattern string
}{
	{code: "en", pattern: `eng?(lish)?([\W_]*subs?(titles)?)?`},
	{code: "fr", pattern: `(true|subs?[\W]?)?fr(e|ench)?([\W_]*subs?(titles)?)?()?|vostf?r?|vf`},
	{code: "sp", pattern: `(sub)?esp|spa(nish)?([\W_]*subs?(titles)?)?`},
	{code: "ge", pattern: `ger(man)?([\W_]*subs?(titles)?)?`},
	{code: "it", pattern: `ita(liano?)?([\W_]*subs?(titles)?)?`},
	{code: "du", pattern: `dutch([\W_]*subs?(titles)?)?`},
	{code: "nl", pattern: `nl([\W_]*subs?(titles)?)?`},
	{code: "sw", pattern: `swe([\W_]*subs?(titles)?)?`},
	{code: "ar", pattern: `(subs?)?arab(ic)?([\W_]*subs?(titles)?)?`},
}

type languageMatcher struct {
	re   *regexp.Regexp
	code string
}

var languageMatchers = func() []languageMatcher {
	matchers := make([]languageMatcher, 0, len(languageVocabulary))
	for _, l := range languageVocabulary {
		matchers = append(matchers, languageMatcher{
			code: l.code,
			re:   regexp.MustCompile(`(?i)(^|[\W_])(` + l.pattern + `)([\W_]|$)`),
		})
	}
	return matchers
}()

func languageAlternation() string {
	patterns := make([]string, 0, len(languageVocabulary))
	for _, l := range languageVocabulary {
		patterns = append(patterns, l.pattern)
	}
	return strings.Join(patterns, "|")
}

// Languages returns the supported language codes in detection order.
func Languages() []string {
	codes := make([]string, 0, len(languageVocabulary))
	for _, l := range languageVocabulary {
		codes = append(codes, l.code)
	}
	return codes
}

// DetectLanguages returns the language codes whose markers appear in s.
// The result is never empty: DefaultLanguage stands in when nothing matches
// and is dropped when a more specific language was found.
func DetectLanguages(s string) []string {
	var langs []string
	for _, m := range languageMatchers {
		if m.re.MatchString(s) {
			langs = append(langs, m.code)
		}
	}
	return MergeLanguages(langs)
}

// MergeLanguages returns the ordered union of the given language sets, with
// the default language pruned when anything else is present.
func MergeLanguages(sets ...[]string) []string {
	var merged []string
	for _, set := range sets {
		for _, code := range set {
			if !slices.Contains(merged, code) {
				merged = append(merged, code)
			}
		}
	}

	if len(merged) == 0 {
		return []string{DefaultLanguage}
	}
	if len(merged) > 1 {
		merged = slices.DeleteFunc(merged, func(code string) bool {
			return code == DefaultLanguage
		})
	}
	return merged
}

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
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Level selects how aggressively Clean normalizes a string. Every level
// applies all the transforms of the levels below it.
type Level int

const (
	// LevelBase strips control characters and markup and folds to ASCII.
	LevelBase Level = 0
	// LevelWords lowercases and collapses non-word runs to single spaces.
	LevelWords Level = 1
	// LevelBrackets drops bracketed spans surrounded by text.
	LevelBrackets Level = 3
	// LevelBracketTail drops the first bracketed span preceded by text and
	// everything after it.
	LevelBracketTail Level = 4
	// LevelRip removes the rip suffix and any unclosed trailing bracket.
	LevelRip Level = 5
	// LevelYears removes every year token.
	LevelYears Level = 6
	// LevelLastYear truncates the string at the last year token.
	LevelLastYear Level = 7
	// LevelEpisode rebuilds the string as "name [season ]episode".
	LevelEpisode Level = 9
)

const bracketPattern = `[\(\[\{].*?[\)\]\}]`

var (
	controlRe         = regexp.MustCompile(`[\n\r\t]+`)
	noBreakSpaceRe    = regexp.MustCompile(`&nbsp;|&#160;|&#xA0;`)
	bracketTailRe     = regexp.MustCompile(`^(.+?)` + bracketPattern + `.*$`)
	bracketAfterRe    = regexp.MustCompile(`(.+)` + bracketPattern)
	bracketBeforeRe   = regexp.MustCompile(bracketPattern + `(.+)`)
	unclosedBracketRe = regexp.MustCompile(`[\(\[\{<][^\)\]\}>]*$`)
	nonWordRe         = regexp.MustCompile(`[\W_]+`)
)

// Clean normalizes a release name. Level 0 only strips noise (control
// characters, markup, accents); higher levels are destructive and are meant
// for building comparable names.
//
// Examples:
//   - Clean("Amélie<br/>", LevelBase) → "Amelie"
//   - Clean("The.Show.(2010).720p", LevelWords) → "the show 2010 720p"
//   - Clean("Movie Name 2010 DVDRip XviD", LevelYears) → "movie name"
func Clean(s string, level Level) string {
	if s == "" {
		return ""
	}

	s = controlRe.ReplaceAllString(s, "")
	s = noBreakSpaceRe.ReplaceAllString(s, " ")
	s = stripMarkup(s)
	s = foldASCII(s)

	if level < LevelWords {
		return s
	}

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "'", "")

	if level >= LevelBracketTail {
		s = bracketTailRe.ReplaceAllString(s, "${1}")
	}

	if level >= LevelBrackets {
		s = bracketAfterRe.ReplaceAllString(s, "${1} ")
		s = bracketBeforeRe.ReplaceAllString(s, " ${1}")
	}

	if level >= LevelRip {
		// the rip always runs to the end of the string
		s = strings.TrimSuffix(s, ExtractRip(s))
		s = unclosedBracketRe.ReplaceAllString(s, "")
	}

	words := splitWords(s)

	if level >= LevelLastYear {
		for i := len(words) - 1; i >= 0; i-- {
			if IsYear(words[i]) {
				words = words[:i]
				break
			}
		}
	}

	if level >= LevelYears {
		kept := words[:0]
		for _, w := range words {
			if !IsYear(w) {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	s = strings.Join(words, " ")

	if level >= LevelEpisode {
		t := Parse(s)
		if t.Episode == "" {
			return t.Name
		}
		parts := []string{t.Name}
		if t.Season != "" {
			parts = append(parts, t.Season)
		}
		parts = append(parts, t.Episode)
		s = strings.TrimSpace(strings.Join(parts, " "))
	}

	return s
}

// splitWords splits on runs of non-alphanumeric characters, dropping empties.
func splitWords(s string) []string {
	var words []string
	for _, w := range nonWordRe.Split(s, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// stripMarkup renders HTML fragments as plain text, decoding entities.
// Input that fails to tokenize is returned unchanged.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String()
			}
			return s
		case html.TextToken:
			b.Write(z.Text())
		default:
		}
	}
}

// foldASCII converts fullwidth forms to ASCII, strips diacritics and drops
// anything that still isn't ASCII afterwards.
func foldASCII(s string) string {
	s = strings.ToValidUTF8(s, "")
	t := transform.Chain(
		width.Fold,
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxASCII
		})),
	)
	if folded, _, err := transform.String(t, s); err == nil {
		return folded
	}
	return s
}

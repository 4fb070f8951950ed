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

package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mediacore/mediacore/pkg/titles"
	"github.com/rs/zerolog/log"
)

// Mode selects how strictly a Matcher anchors the query words.
type Mode string

const (
	// ModeAuto picks ModeTV for episodic titles and ModeDefault otherwise.
	ModeAuto Mode = ""
	// ModeDefault anchors both ends, tolerating brackets and stop words
	// around and between the words.
	ModeDefault Mode = "default"
	// ModeAll matches the words in order anywhere in the candidate.
	ModeAll Mode = "all"
	// ModeTV anchors the start and accepts anything after the episode.
	ModeTV Mode = "tv"
	// ModeWordLoose anchors the start; the end only needs a word boundary.
	ModeWordLoose Mode = "word_loose"
	// ModeWordContains needs a word boundary on both sides but no anchors.
	ModeWordContains Mode = "word_contains"
)

// modeAliases maps the camel case spellings used by older configs to their
// modes.
var modeAliases = map[Mode]Mode{
	"wordLoose":    ModeWordLoose,
	"wordContains": ModeWordContains,
}

// ErrUnknownMode is returned by Build for an unsupported Mode.
var ErrUnknownMode = errors.New("unknown match mode")

// stopWords are ignored when tokenizing queries and tolerated between words
// of candidates.
var stopWords = []string{"the", "a", "and", "s", "le", "la", "un", "une", "us"}

var (
	tokenSplitRe = regexp.MustCompile(`[\W_]+`)

	junkBracket  = `([\(\[][^\)\]]*[\)\]])`
	junkStopWord = `(` + strings.Join(stopWords, "|") + `)`
)

// Matcher is a compiled, case-insensitive pattern testing whether candidate
// strings name the same release as a parsed title. It is safe for
// concurrent use.
type Matcher struct {
	re   *regexp.Regexp
	mode Mode
}

// MatchString reports whether candidate names the same release.
func (m *Matcher) MatchString(candidate string) bool {
	return m.re.MatchString(candidate)
}

// Mode returns the resolved mode the matcher was built with.
func (m *Matcher) Mode() Mode {
	return m.mode
}

func (m *Matcher) String() string {
	return m.re.String()
}

type separators struct {
	begin  string
	inside string
	end    string
}

func separatorsFor(mode Mode) (separators, error) {
	word := separators{
		begin:  `^[\W_]*` + junkBracket + `*[\W_]*(` + junkStopWord + `[\W_]+)*`,
		inside: `[\W_s]*` + junkBracket + `*[\W_]*([\W_](` + junkStopWord + `[\W_]+)*)*`,
		end:    `[\W_s]*` + junkBracket + `*[\W_]*([\W_]` + junkStopWord + `)*[\W_]*$`,
	}

	switch mode {
	case ModeDefault:
	case ModeAll:
		return separators{begin: `^.*`, inside: `.*`, end: `.*$`}, nil
	case ModeTV:
		word.end = `(([\W_s]*` + junkBracket + `*[\W_]*.*$)|$)`
	case ModeWordLoose:
		word.end = `([\W_].*$|$)`
	case ModeWordContains:
		word.begin = `(^|^.*[\W_])`
		word.end = `([\W_].*$|$)`
	default:
		return separators{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return word, nil
}

// Build compiles a Matcher for t. Episodic titles are matched on
// "name season episode" and also accept the previous episode at the same
// position, for releases numbering double episodes from the first part.
// Other titles are matched on the words of the raw name.
//
// Example: the title of "show name 20x11" in ModeTV matches
// "show.name.s20e11" and "Show Name 20x10-11" but not "show.name.s20e12".
func Build(t titles.ParsedTitle, mode Mode) (*Matcher, error) {
	if canonical, ok := modeAliases[mode]; ok {
		mode = canonical
	}
	if mode == ModeAuto {
		mode = ModeDefault
		if t.IsEpisodic() {
			mode = ModeTV
		}
	}

	seps, err := separatorsFor(mode)
	if err != nil {
		return nil, err
	}

	var body string
	if t.IsEpisodic() {
		body = strings.Join(tokenize(t.Name), seps.inside)
		if body != "" {
			body += seps.inside
		}
		body += episodePattern(t)
	} else {
		body = strings.Join(tokenize(t.Raw), seps.inside)
	}

	pattern := `(?i)` + seps.begin + body + seps.end
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile matcher for %q: %w", t.Raw, err)
	}

	log.Debug().
		Str("title", t.Raw).
		Str("mode", string(mode)).
		Str("pattern", pattern).
		Msg("built title matcher")

	return &Matcher{re: re, mode: mode}, nil
}

// MustBuild is like Build but panics on error. Intended for static titles
// and tests.
func MustBuild(t titles.ParsedTitle, mode Mode) *Matcher {
	m, err := Build(t, mode)
	if err != nil {
		panic(err)
	}
	return m
}

// tokenize lowercases s, splits it into words and drops stop words. Words
// ending in "s" also match without it or with an apostrophe ("show's").
func tokenize(s string) []string {
	var tokens []string
	for _, w := range tokenSplitRe.Split(strings.ToLower(s), -1) {
		if w == "" || isStopWord(w) {
			continue
		}
		if len(w) > 1 && strings.HasSuffix(w, "s") {
			w = w[:len(w)-1] + `'?s?`
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func isStopWord(w string) bool {
	for _, sw := range stopWords {
		if w == sw {
			return true
		}
	}
	return false
}

// episodePattern matches the season/episode marker of t or a double episode
// marker starting at the previous episode ("20x10-11", "s20e10-s20e11").
func episodePattern(t titles.ParsedTitle) string {
	season := regexp.QuoteMeta(t.Season)
	episode := regexp.QuoteMeta(t.Episode)
	prevSeason, prevEpisode, _ := titles.PreviousEpisode(t)
	prevSeason = regexp.QuoteMeta(prevSeason)
	prevEpisode = regexp.QuoteMeta(prevEpisode)

	// "part 2" style markers carry no season
	if t.Season == "" {
		return fmt.Sprintf(`((?:part)?[^1-9]{0,3}%s[^1-9]{0,3}%s|(?:part)?[^1-9]{0,3}%s)(\D|$)`,
			prevEpisode, episode, episode)
	}

	return fmt.Sprintf(`([^1-9]{0,3}%s\D*%s\D[^1-9]*(?:%s)?\D*%s|[^1-9]{0,3}%s\D*%s)(\D|$)`,
		prevSeason, prevEpisode, season, episode, season, episode)
}

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
	"strings"
)

// episodePatterns are tried in priority order. Each has three groups: the
// whole separator, the season digits and the episode digits.
var episodePatterns = []*regexp.Regexp{
	// s03e02, 3x02
	regexp.MustCompile(`(?i)\b(s?(\d{1,2})[ex](\d{2}))\b`),
	// 302, 1102
	regexp.MustCompile(`(?i)\b((\d{1,2})(\d{2}))\b`),
	// part 2
	regexp.MustCompile(`(?i)\b(()part[\W_]*(\d+))\b`),
	// trailing 1-2 digit number
	regexp.MustCompile(`(?i)\b(()(\d{1,2}))\b`),
}

// EpisodeInfo is the season/episode split of a release name.
type EpisodeInfo struct {
	// Name is the level 1 cleaned text before the episode marker.
	Name string
	// Season has its leading zeros stripped and may be empty.
	Season  string
	Episode string
	// EpisodeAlt is the marker itself when it was all digits ("302").
	EpisodeAlt string
	// Residual is the text after the marker, a rip tag candidate.
	Residual string
}

// ExtractEpisode splits s around its season/episode marker. It returns false
// when s carries a movie rip marker without a TV one, when no marker is found,
// when the marker is a year or when nothing precedes it.
//
// Examples:
//   - "show name s03e02 HDTV XviD TEAM" → {Name: "show name", Season: "3", Episode: "02"}
//   - "anime name 302" → {Name: "anime name", Season: "3", Episode: "02", EpisodeAlt: "302"}
//   - "Movie Name 2010" → false
func ExtractEpisode(s string) (EpisodeInfo, bool) {
	if IsMovieRip(s) && !IsTVRip(s) {
		return EpisodeInfo{}, false
	}

	s = strings.ReplaceAll(s, "_", " ")

	// the first match of the first pattern that matches at all wins
	var m []int
	for _, re := range episodePatterns {
		if m = re.FindStringSubmatchIndex(s); m != nil {
			break
		}
	}
	if m == nil {
		return EpisodeInfo{}, false
	}

	sep := s[m[2]:m[3]]
	if IsYear(sep) {
		return EpisodeInfo{}, false
	}

	// a marker with nothing before it is a track number, not an episode
	name := Clean(s[:m[2]], LevelWords)
	if name == "" {
		return EpisodeInfo{}, false
	}

	info := EpisodeInfo{
		Name:     name,
		Episode:  s[m[6]:m[7]],
		Residual: s[m[3]:],
	}
	if m[4] >= 0 {
		info.Season = strings.TrimLeft(s[m[4]:m[5]], "0")
	}
	if isDigits(sep) {
		info.EpisodeAlt = sep
	}

	return info, true
}

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

package search

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mediacore/mediacore/pkg/titles"
)

// Search categories.
const (
	CategoryMovies = "movies"
	CategoryTV     = "tv"
	CategoryAnime  = "anime"
	CategoryMusic  = "music"
)

// Advance selects which field Next increments.
type Advance string

const (
	AdvanceEpisode Advance = "episode"
	AdvanceSeason  Advance = "season"
)

// Search is a tracked query. Season and Episode are 0 when absent.
type Search struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Mode     string   `json:"mode"`
	Album    string   `json:"album,omitempty"`
	Langs    []string `json:"langs"`
	Season   int      `json:"season,omitempty"`
	Episode  int      `json:"episode,omitempty"`
}

// New returns a Search with lowercased name, category and mode.
func New(name, category, mode string, langs []string) Search {
	return Search{
		Name:     strings.ToLower(name),
		Category: strings.ToLower(category),
		Mode:     strings.ToLower(mode),
		Langs:    slices.Clone(langs),
	}
}

// FromTitle starts a search tracking t. Absolute numbering is kept as a
// bare episode, so "anime name 132" advances to 133 rather than 1x33.
func FromTitle(t titles.ParsedTitle, category, mode string) Search {
	s := New(t.Name, category, mode, t.Languages)
	season, episode := t.Season, t.Episode
	if AbsoluteNumbering(t, category) {
		season, episode = "", t.EpisodeAlt
	}
	s.Season = atoiOrZero(season)
	s.Episode = atoiOrZero(episode)
	return s
}

// AbsoluteNumbering reports whether t's compact episode token ("302") counts
// episodes from the start of the series. That is the case for anime and for
// any title whose rip is not a TV rip.
func AbsoluteNumbering(t titles.ParsedTitle, category string) bool {
	if t.EpisodeAlt == "" {
		return false
	}
	return strings.EqualFold(category, CategoryAnime) || !titles.IsTVRip(t.Rip)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Query renders the search as a string suitable for scrapers:
// "name 3x07", "name 07" or "name album".
func (s Search) Query() string {
	switch {
	case s.Episode > 0:
		extra := fmt.Sprintf("%02d", s.Episode)
		if s.Season > 0 {
			extra = fmt.Sprintf("%dx%s", s.Season, extra)
		}
		return s.Name + " " + extra
	case s.Album != "":
		return s.Name + " " + s.Album
	default:
		return s.Name
	}
}

// Next returns the search following s. AdvanceEpisode moves to the next
// episode; AdvanceSeason moves to episode 1 of the next season. It returns
// false when s has no episode (or season) to advance.
func (s Search) Next(advance Advance) (Search, bool) {
	next := s
	next.Langs = slices.Clone(s.Langs)

	switch {
	case advance == AdvanceEpisode && s.Episode > 0:
		next.Episode++
		return next, true
	case advance == AdvanceSeason && s.Season > 0:
		next.Season++
		next.Episode = 1
		return next, true
	default:
		return Search{}, false
	}
}

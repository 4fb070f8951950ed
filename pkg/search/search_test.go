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
	"testing"

	"github.com/mediacore/mediacore/pkg/titles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	langs := []string{"fr"}
	s := New("The Wire", "TV", "Default", langs)
	langs[0] = "it"

	assert.Equal(t, "the wire", s.Name)
	assert.Equal(t, CategoryTV, s.Category)
	assert.Equal(t, "default", s.Mode)
	assert.Equal(t, []string{"fr"}, s.Langs)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		search   Search
	}{
		{name: "season and episode", search: Search{Name: "show", Season: 3, Episode: 7}, expected: "show 3x07"},
		{name: "episode only", search: Search{Name: "anime", Episode: 112}, expected: "anime 112"},
		{name: "album", search: Search{Name: "artist", Album: "album"}, expected: "artist album"},
		{name: "name only", search: Search{Name: "movie"}, expected: "movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.search.Query())
		})
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	s := Search{Name: "show", Season: 3, Episode: 7, Langs: []string{"en"}}

	next, ok := s.Next(AdvanceEpisode)
	require.True(t, ok)
	assert.Equal(t, 3, next.Season)
	assert.Equal(t, 8, next.Episode)

	next.Langs[0] = "fr"
	assert.Equal(t, []string{"en"}, s.Langs)

	next, ok = s.Next(AdvanceSeason)
	require.True(t, ok)
	assert.Equal(t, 4, next.Season)
	assert.Equal(t, 1, next.Episode)
	assert.Equal(t, "show 4x01", next.Query())

	// the original is untouched
	assert.Equal(t, 7, s.Episode)
}

func TestNextCannotAdvance(t *testing.T) {
	t.Parallel()

	_, ok := Search{Name: "anime", Episode: 12}.Next(AdvanceSeason)
	assert.False(t, ok)

	_, ok = Search{Name: "movie"}.Next(AdvanceEpisode)
	assert.False(t, ok)

	_, ok = Search{Name: "show", Season: 1, Episode: 1}.Next(Advance("year"))
	assert.False(t, ok)
}

func TestFromTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		category string
		query    string
		season   int
		episode  int
	}{
		{name: "season and episode", raw: "Show.Name.S01E05", category: CategoryTV, season: 1, episode: 5, query: "show name 1x05"},
		{name: "anime absolute", raw: "anime name 132", category: CategoryAnime, episode: 132, query: "anime name 132"},
		{name: "compact without rip", raw: "anime name 299", category: CategoryTV, episode: 299, query: "anime name 299"},
		{name: "compact with tv rip", raw: "Anime Name - 302 [HDTV]", category: CategoryTV, season: 3, episode: 2, query: "anime name 3x02"},
		{name: "anime keeps absolute even with tv rip", raw: "Anime Name - 302 [HDTV]", category: CategoryAnime, episode: 302, query: "anime name 302"},
		{name: "no episode", raw: "Movie.Name.2010.DVDRip", category: CategoryMovies, query: "movie name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := FromTitle(titles.Parse(tt.raw), tt.category, "")
			assert.Equal(t, tt.season, s.Season)
			assert.Equal(t, tt.episode, s.Episode)
			assert.Equal(t, tt.query, s.Query())
		})
	}
}

func TestFromTitleAdvancesAbsoluteNumbering(t *testing.T) {
	t.Parallel()

	s := FromTitle(titles.Parse("anime name 299"), CategoryAnime, "")

	next, ok := s.Next(AdvanceEpisode)
	require.True(t, ok)
	assert.Equal(t, "anime name 300", next.Query())

	_, ok = s.Next(AdvanceSeason)
	assert.False(t, ok)
}

func TestFromTitleNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw        string
		category   string
		nextEp     string
		nextSeason string
	}{
		{raw: "show name", category: CategoryTV},
		{raw: "show name 2012", category: CategoryTV},
		{raw: "show name 20x12", category: CategoryTV, nextEp: "show name 20x13", nextSeason: "show name 21x01"},
		{raw: "show name s03e02", category: CategoryTV, nextEp: "show name 3x03", nextSeason: "show name 4x01"},
		{raw: "show name 11x03", category: CategoryTV, nextEp: "show name 11x04", nextSeason: "show name 12x01"},
		{raw: "show name 23 1x02", category: CategoryTV, nextEp: "show name 23 1x03", nextSeason: "show name 23 2x01"},
		{raw: "anime name 009", category: CategoryAnime, nextEp: "anime name 10"},
		{raw: "anime name 02", category: CategoryAnime, nextEp: "anime name 03"},
		{raw: "anime name 99", category: CategoryAnime, nextEp: "anime name 100"},
		{raw: "anime name 132", category: CategoryAnime, nextEp: "anime name 133"},
		{raw: "anime name 299", category: CategoryAnime, nextEp: "anime name 300"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			s := FromTitle(titles.Parse(tt.raw), tt.category, "")

			next, ok := s.Next(AdvanceEpisode)
			assert.Equal(t, tt.nextEp != "", ok)
			if ok {
				assert.Equal(t, tt.nextEp, next.Query())
			}

			next, ok = s.Next(AdvanceSeason)
			assert.Equal(t, tt.nextSeason != "", ok)
			if ok {
				assert.Equal(t, tt.nextSeason, next.Query())
			}
		})
	}
}

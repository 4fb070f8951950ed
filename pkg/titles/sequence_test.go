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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviousEpisode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		season      string
		episode     string
		wantSeason  string
		wantEpisode string
		wantOK      bool
	}{
		{name: "simple", season: "1", episode: "23", wantSeason: "1", wantEpisode: "22", wantOK: true},
		{name: "keeps padding", season: "1", episode: "01", wantSeason: "1", wantEpisode: "00", wantOK: true},
		{name: "no season", season: "", episode: "100", wantSeason: "", wantEpisode: "099", wantOK: true},
		{name: "rolls back season", season: "2", episode: "0", wantSeason: "1", wantEpisode: "99", wantOK: true},
		{name: "padded season rollback", season: "01", episode: "00", wantSeason: "00", wantEpisode: "99", wantOK: true},
		{name: "season floor", season: "0", episode: "0", wantSeason: "0", wantEpisode: "99", wantOK: true},
		{name: "no season rollback", season: "", episode: "0", wantSeason: "", wantEpisode: "99", wantOK: true},
		{name: "no episode", season: "1", episode: "", wantOK: false},
		{name: "not a number", season: "1", episode: "ab", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			season, episode, ok := PreviousEpisode(ParsedTitle{Season: tt.season, Episode: tt.episode})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSeason, season)
			assert.Equal(t, tt.wantEpisode, episode)
		})
	}
}

func TestPreviousEpisodeFromParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw         string
		wantSeason  string
		wantEpisode string
	}{
		{raw: "show name 1x23", wantSeason: "1", wantEpisode: "22"},
		{raw: "show name s01e03", wantSeason: "1", wantEpisode: "02"},
		{raw: "show name 1x01", wantSeason: "1", wantEpisode: "00"},
		{raw: "show name s02e01", wantSeason: "2", wantEpisode: "00"},
		{raw: "show name 123", wantSeason: "1", wantEpisode: "22"},
		{raw: "show name 100", wantSeason: "0", wantEpisode: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			season, episode, ok := PreviousEpisode(Parse(tt.raw))
			assert.True(t, ok)
			assert.Equal(t, tt.wantSeason, season)
			assert.Equal(t, tt.wantEpisode, episode)
		})
	}
}

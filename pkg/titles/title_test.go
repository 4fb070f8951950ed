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

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected ParsedTitle
	}{
		{
			name: "tv episode",
			raw:  "show name s03e02 HDTV XviD TEAM",
			expected: ParsedTitle{
				Raw:         "show name s03e02 HDTV XviD TEAM",
				FullName:    "show name s03e02",
				Name:        "show name",
				DisplayName: "show name 3x02",
				Season:      "3",
				Episode:     "02",
				Rip:         " HDTV XviD TEAM",
				Languages:   []string{"en"},
			},
		},
		{
			name: "anime absolute episode",
			raw:  "anime name 302",
			expected: ParsedTitle{
				Raw:         "anime name 302",
				FullName:    "anime name 302",
				Name:        "anime name",
				DisplayName: "anime name 302",
				Season:      "3",
				Episode:     "02",
				EpisodeAlt:  "302",
				Languages:   []string{"en"},
			},
		},
		{
			name: "movie",
			raw:  "Movie Name 2010 FRENCH DVDRip XviD",
			expected: ParsedTitle{
				Raw:         "Movie Name 2010 FRENCH DVDRip XviD",
				FullName:    "movie name",
				Name:        "movie name",
				DisplayName: "movie name",
				Rip:         " FRENCH DVDRip XviD",
				Languages:   []string{"fr"},
				Year:        2010,
			},
		},
		{
			name: "music track",
			raw:  "01 - Artist - Song",
			expected: ParsedTitle{
				Raw:         "01 - Artist - Song",
				FullName:    "01 artist song",
				Name:        "01 artist song",
				DisplayName: "01 artist song",
				Artist:      "artist",
				TrackNumber: "01",
				TrackTitle:  "song",
				Languages:   []string{"en"},
			},
		},
		{
			name: "empty",
			raw:  "",
			expected: ParsedTitle{
				Languages: []string{"en"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Parse(tt.raw))
		})
	}
}

func TestParseAdoptsAlternateWithLongerRip(t *testing.T) {
	t.Parallel()

	got := Parse("episode 05", "Other Name", "Show Name S01E05 720p HDTV x264", "Show S09E09 720p HDTV x264 PROPER")

	assert.Equal(t, "show name", got.Name)
	assert.Equal(t, "show name s01e05", got.FullName)
	assert.Equal(t, "1", got.Season)
	assert.Equal(t, "05", got.Episode)
	assert.Equal(t, " 720p HDTV x264", got.Rip)
	// the tv rip overrides the absolute number
	assert.Equal(t, "show name 1x05", got.DisplayName)
}

func TestParseKeepsPrimaryWithoutLongerRip(t *testing.T) {
	t.Parallel()

	got := Parse("Show Name S01E05 720p HDTV x264", "Other Show S02E01")
	assert.Equal(t, "show name", got.Name)
	assert.Equal(t, "1", got.Season)
}

func TestParseMergesLanguagesFromAlternates(t *testing.T) {
	t.Parallel()

	got := Parse("Movie Name 2010 FRENCH DVDRip", "Movie Name ITA")
	assert.Equal(t, "movie name", got.Name)
	assert.Equal(t, []string{"fr", "it"}, got.Languages)
	assert.True(t, got.HasLanguage("it", "ge"))
	assert.False(t, got.HasLanguage("en"))
}

func TestParsedTitleString(t *testing.T) {
	t.Parallel()

	got := Parse("show name s03e02").String()
	assert.Contains(t, got, `"show name 3x02"`)
	assert.Contains(t, got, `season="3"`)
}

func TestIsEpisodic(t *testing.T) {
	t.Parallel()

	assert.True(t, Parse("show name s03e02").IsEpisodic())
	assert.False(t, Parse("Movie.Name.2010.DVDRip.XviD-GRP").IsEpisodic())
}

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
	"regexp"
	"testing"

	"github.com/mediacore/mediacore/pkg/titles"
	"github.com/mediacore/mediacore/pkg/titles/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultValidateRawFilters(t *testing.T) {
	t.Parallel()

	f := Filters{
		IncludeRaw: []StringMatcher{regexp.MustCompile(`(?i)\b([hp]dtv|dsr(ip)?)\b`)},
		ExcludeRaw: []StringMatcher{regexp.MustCompile(`(?i)\b1080p\b`)},
	}

	assert.True(t, Result{Title: "Show.Name.S01E02.HDTV.XviD"}.Validate(f))
	assert.False(t, Result{Title: "Show.Name.S01E02.1080p.HDTV"}.Validate(f))
	assert.False(t, Result{Title: "Show.Name.S01E02.WEB"}.Validate(f))
}

func TestResultValidateCleanTitle(t *testing.T) {
	t.Parallel()

	m := matcher.MustBuild(titles.Parse("show name s01e02"), matcher.ModeTV)
	f := Filters{Include: []StringMatcher{m}}

	assert.True(t, Result{Title: "Show.Name.S01E02.HDTV.XviD"}.Validate(f))
	assert.False(t, Result{Title: "Show.Name.S01E03.HDTV.XviD"}.Validate(f))

	f = Filters{Exclude: []StringMatcher{m}}
	assert.False(t, Result{Title: "Show.Name.S01E02.HDTV.XviD"}.Validate(f))
}

func TestResultValidateLanguages(t *testing.T) {
	t.Parallel()

	f := Filters{Langs: []string{"fr"}}
	assert.True(t, Result{Title: "Movie.2010.FRENCH.DVDRip"}.Validate(f))
	assert.False(t, Result{Title: "Movie.2010.DVDRip"}.Validate(f))
}

func TestResultValidateSize(t *testing.T) {
	t.Parallel()

	f := Filters{SizeMin: 100, SizeMax: 2000}

	r := Result{Title: "Movie.2010.DVDRip"}
	assert.True(t, r.Validate(f), "unknown size passes")

	require.NoError(t, r.SetSize("700 MB"))
	assert.True(t, r.Validate(f))

	require.NoError(t, r.SetSize("3 GiB"))
	assert.False(t, r.Validate(f))

	require.NoError(t, r.SetSize("20 MiB"))
	assert.False(t, r.Validate(f))

	assert.True(t, r.Validate(Filters{}), "zero bounds are ignored")
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	mb, err := ParseSize("1 MiB")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mb, 0.0001)

	mb, err = ParseSize("1.5 GiB")
	require.NoError(t, err)
	assert.InDelta(t, 1536.0, mb, 0.0001)

	mb, err = ParseSize("700 MB")
	require.NoError(t, err)
	assert.InDelta(t, 667.57, mb, 0.01)

	_, err = ParseSize("huge")
	require.Error(t, err)

	r := Result{}
	require.Error(t, r.SetSize("huge"))
	assert.False(t, r.HasSize)
}

func TestUnique(t *testing.T) {
	t.Parallel()

	got := Unique([]Result{
		{Title: "Show.Name.S01E02", Plugin: "a"},
		{Title: "show name s01e02", Plugin: "b"},
		{Title: "Show.Name.S01E03", Plugin: "a"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Plugin)
	assert.Equal(t, "Show.Name.S01E03", got[1].Title)
}

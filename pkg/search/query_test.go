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

	"github.com/stretchr/testify/assert"
)

func TestCleanQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		category string
		expected string
	}{
		{query: "The Wire s01e02", category: CategoryTV, expected: "wire"},
		{query: "anime name 302", category: CategoryAnime, expected: "anime name 302"},
		{query: "Tom & Jerry", category: CategoryMovies, expected: "tom jerry"},
		{query: "Cats and Dogs", category: CategoryMovies, expected: "cats dogs"},
		{query: "Salt or Pepper", category: CategoryMusic, expected: "salt pepper"},
		{query: "The Big Movie", category: CategoryMovies, expected: "big movie"},
		{query: "the", category: CategoryMovies, expected: "the"},
		{query: "and then", category: CategoryMovies, expected: "and then"},
		{query: "", category: CategoryTV, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CleanQuery(tt.query, tt.category))
		})
	}
}

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
	"strings"

	"github.com/mediacore/mediacore/pkg/titles"
)

// queryConnectors are dropped from scraper queries; most sites treat them
// as operators or ignore them.
var queryConnectors = map[string]struct{}{
	"s":   {},
	"and": {},
	"or":  {},
	"not": {},
}

// CleanQuery prepares a free-form query for a scraper. TV queries are reduced
// to the series name, anime queries to their display name ("name 302").
// Connector words and a leading "the" are dropped.
func CleanQuery(query, category string) string {
	q := titles.Clean(query, titles.LevelWords)

	switch category {
	case CategoryTV:
		q = titles.Parse(q).Name
	case CategoryAnime:
		q = titles.Parse(q).DisplayName
	}

	words := strings.Fields(q)
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if _, ok := queryConnectors[w]; ok && i > 0 && i < len(words)-1 {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) > 1 && kept[0] == "the" {
		kept = kept[1:]
	}

	return strings.Join(kept, " ")
}

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

package config

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/mediacore/mediacore/pkg/helpers"
	"github.com/mediacore/mediacore/pkg/search"
)

// Search holds the result filters for one search category. Sizes are in MB,
// zero means unbounded. Patterns are Go regular expressions matched
// case-insensitively against the scraped title.
type Search struct {
	Include    []string `toml:"include,omitempty,multiline"`
	Exclude    []string `toml:"exclude,omitempty,multiline"`
	IncludeRaw []string `toml:"include_raw,omitempty,multiline"`
	ExcludeRaw []string `toml:"exclude_raw,omitempty,multiline"`
	Langs      []string `toml:"langs,omitempty" validate:"dive,lang"`
	SizeMin    float64  `toml:"size_min" validate:"gte=0"`
	SizeMax    float64  `toml:"size_max" validate:"gte=0"`
}

// SearchFilters returns the result filters configured for category. Invalid
// patterns are logged and skipped.
func (c *Instance) SearchFilters(category string) search.Filters {
	c.mu.RLock()
	s, ok := c.vals.Search[category]
	c.mu.RUnlock()
	if !ok {
		return search.Filters{}
	}

	return search.Filters{
		Include:    compileAll(s.Include),
		Exclude:    compileAll(s.Exclude),
		IncludeRaw: compileAll(s.IncludeRaw),
		ExcludeRaw: compileAll(s.ExcludeRaw),
		Langs:      slices.Clone(s.Langs),
		SizeMin:    s.SizeMin,
		SizeMax:    s.SizeMax,
	}
}

func compileAll(patterns []string) []search.StringMatcher {
	if len(patterns) == 0 {
		return nil
	}
	matchers := make([]search.StringMatcher, 0, len(patterns))
	for _, p := range patterns {
		re, err := helpers.Patterns.Compile(p, true)
		if err != nil {
			log.Warn().Err(err).Msg("skipping invalid search filter")
			continue
		}
		matchers = append(matchers, re)
	}
	log.Debug().
		Int("filters", len(matchers)).
		Int("cached", helpers.Patterns.Len()).
		Msg("compiled search filters")
	return matchers
}

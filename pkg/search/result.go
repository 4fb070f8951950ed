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

	"github.com/dustin/go-humanize"
	"github.com/mediacore/mediacore/pkg/titles"
)

// StringMatcher is satisfied by *matcher.Matcher and *regexp.Regexp.
type StringMatcher interface {
	MatchString(s string) bool
}

// Result is a scraped search result.
type Result struct {
	Title  string
	Plugin string
	// SizeMB is only meaningful when HasSize is set.
	SizeMB  float64
	HasSize bool
}

// Filters restrict which results are accepted. Include/Exclude test the
// cleaned title, the Raw variants test the title as scraped. Zero size
// bounds are ignored.
type Filters struct {
	Include    []StringMatcher
	Exclude    []StringMatcher
	IncludeRaw []StringMatcher
	ExcludeRaw []StringMatcher
	Langs      []string
	SizeMin    float64
	SizeMax    float64
}

// Validate reports whether r passes every filter.
func (r Result) Validate(f Filters) bool {
	if !validateTitle(r.Title, f.IncludeRaw, f.ExcludeRaw) {
		return false
	}

	parsed := titles.Parse(r.Title)
	if !validateTitle(parsed.FullName, f.Include, f.Exclude) {
		return false
	}

	if len(f.Langs) > 0 && !parsed.HasLanguage(f.Langs...) {
		return false
	}

	return r.validateSize(f.SizeMin, f.SizeMax)
}

func validateTitle(title string, include, exclude []StringMatcher) bool {
	for _, m := range include {
		if m != nil && !m.MatchString(title) {
			return false
		}
	}
	for _, m := range exclude {
		if m != nil && m.MatchString(title) {
			return false
		}
	}
	return true
}

func (r Result) validateSize(minMB, maxMB float64) bool {
	if !r.HasSize {
		return true
	}
	if minMB > 0 && r.SizeMB < minMB {
		return false
	}
	if maxMB > 0 && r.SizeMB > maxMB {
		return false
	}
	return true
}

// SetSize parses a human readable size ("700 MB", "1.4 GiB") into r.
func (r *Result) SetSize(size string) error {
	mb, err := ParseSize(size)
	if err != nil {
		return err
	}
	r.SizeMB = mb
	r.HasSize = true
	return nil
}

// ParseSize converts a human readable size to megabytes.
func ParseSize(size string) (float64, error) {
	b, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("failed to parse size %q: %w", size, err)
	}
	return float64(b) / (1024 * 1024), nil
}

// Unique drops results whose cleaned titles were already seen, keeping the
// first occurrence.
func Unique(results []Result) []Result {
	var seen []string
	unique := make([]Result, 0, len(results))
	for _, r := range results {
		name := titles.Clean(r.Title, titles.LevelWords)
		if slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)
		unique = append(unique, r)
	}
	return unique
}

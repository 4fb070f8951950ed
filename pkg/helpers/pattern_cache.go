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

package helpers

import (
	"fmt"
	"regexp"

	"github.com/mediacore/mediacore/pkg/helpers/syncutil"
)

// PatternCache holds compiled regular expressions keyed by their source.
// It is safe for concurrent use.
type PatternCache struct {
	cache map[string]*regexp.Regexp
	mu    syncutil.RWMutex
}

// Patterns is the process wide cache used for user supplied filters.
var Patterns = NewPatternCache()

func NewPatternCache() *PatternCache {
	return &PatternCache{
		cache: make(map[string]*regexp.Regexp),
	}
}

// Compile returns the compiled form of pattern, compiling it on first use.
// With fold set the expression matches case-insensitively.
func (pc *PatternCache) Compile(pattern string, fold bool) (*regexp.Regexp, error) {
	if fold {
		pattern = "(?i)" + pattern
	}

	pc.mu.RLock()
	re, ok := pc.cache[pattern]
	pc.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	// another caller may have compiled it meanwhile
	if cached, ok := pc.cache[pattern]; ok {
		return cached, nil
	}
	pc.cache[pattern] = re
	return re, nil
}

// Len returns the number of cached expressions.
func (pc *PatternCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.cache)
}

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
	"fmt"
	"strconv"
)

// PreviousEpisode returns the season and episode preceding t. Episode 0 rolls
// back to episode 99 of the previous season, never going below season 0.
// Both values keep the zero padding width of t's fields. ok is false when t
// has no numeric episode.
//
// Examples:
//   - season "1", episode "23" → "1", "22"
//   - season "1", episode "01" → "1", "00"
//   - season "", episode "100" → "", "099"
//   - season "2", episode "0" → "1", "99"
func PreviousEpisode(t ParsedTitle) (season, episode string, ok bool) {
	if t.Episode == "" {
		return "", "", false
	}

	ep, err := strconv.Atoi(t.Episode)
	if err != nil {
		return "", "", false
	}

	season = t.Season
	ep--
	if ep < 0 {
		ep = 99
		if t.Season != "" {
			s, err := strconv.Atoi(t.Season)
			if err != nil {
				return "", "", false
			}
			season = zeroPad(max(s-1, 0), len(t.Season))
		}
	}

	return season, zeroPad(ep, len(t.Episode)), true
}

func zeroPad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

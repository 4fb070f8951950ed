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

import "regexp"

var (
	audioTrackRe = regexp.MustCompile(`^(\d{2,3})[\W_]*-[\W_]*(.*?)[\W_]*-[\W_]*(.*)$`)
	audioAlbumRe = regexp.MustCompile(`^(.*?)[\W_]*-[\W_]*(.*)$`)
)

// AudioInfo holds the fields of "artist - album" and
// "NN - artist - track title" names.
type AudioInfo struct {
	Artist      string
	Album       string
	TrackNumber string
	TrackTitle  string
}

// SplitAudio splits a dash separated audio name. Track names
// ("03 - Artist - Title") are tried before album names ("Artist - Album").
func SplitAudio(s string) (AudioInfo, bool) {
	if m := audioTrackRe.FindStringSubmatch(s); m != nil {
		return AudioInfo{
			TrackNumber: m[1],
			Artist:      Clean(m[2], LevelYears),
			TrackTitle:  Clean(m[3], LevelYears),
		}, true
	}

	if m := audioAlbumRe.FindStringSubmatch(s); m != nil {
		return AudioInfo{
			Artist: Clean(m[1], LevelYears),
			Album:  Clean(m[2], LevelYears),
		}, true
	}

	return AudioInfo{}, false
}

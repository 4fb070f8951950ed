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

package matcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mediacore/mediacore/pkg/titles"
	"pgregory.net/rapid"
)

// episodeNameGen generates episodic release names in the common layouts.
func episodeNameGen() *rapid.Generator[string] {
	words := []string{
		"show", "name", "lost", "wire", "doctor", "house", "office",
		"big", "bang", "theory", "breaking", "bad", "the", "a",
	}
	rips := []string{"", "HDTV", "720p.HDTV.x264", "PDTV-GRP", "XviD"}

	return rapid.Custom(func(t *rapid.T) string {
		sep := rapid.SampledFrom([]string{".", " ", "_"}).Draw(t, "sep")
		name := rapid.SliceOfN(rapid.SampledFrom(words), 1, 3).Draw(t, "words")
		season := rapid.IntRange(1, 30).Draw(t, "season")
		episode := rapid.IntRange(1, 99).Draw(t, "episode")

		marker := rapid.SampledFrom([]string{"s%02de%02d", "S%02dE%02d", "%dx%02d"}).Draw(t, "marker")
		parts := append(name, fmt.Sprintf(marker, season, episode))
		if rip := rapid.SampledFrom(rips).Draw(t, "rip"); rip != "" {
			parts = append(parts, rip)
		}
		return strings.Join(parts, sep)
	})
}

func TestPropertyEpisodicRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		raw := episodeNameGen().Draw(t, "raw")
		parsed := titles.Parse(raw)
		if !parsed.IsEpisodic() {
			return
		}
		m, err := Build(parsed, ModeAuto)
		if err != nil {
			t.Fatalf("build %q: %v", raw, err)
		}
		if !m.MatchString(raw) {
			t.Fatalf("matcher %s rejects its own source %q", m, raw)
		}
	})
}

func TestPropertyBuildAllModes(t *testing.T) {
	t.Parallel()

	modes := []Mode{ModeAuto, ModeDefault, ModeAll, ModeTV, ModeWordLoose, ModeWordContains}

	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		mode := rapid.SampledFrom(modes).Draw(t, "mode")
		if _, err := Build(titles.Parse(raw), mode); err != nil {
			t.Fatalf("build %q in %s: %v", raw, mode, err)
		}
	})
}

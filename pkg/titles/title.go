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
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParsedTitle is the structured form of a release name. Values are built
// once by Parse and treated as read-only afterwards.
type ParsedTitle struct {
	// Raw is the input string as given.
	Raw string `json:"raw"`
	// FullName is the normalized name with rip and years removed.
	FullName string `json:"fullName"`
	// Name is the series/movie/artist name without season or episode.
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Season      string `json:"season,omitempty"`
	Episode     string `json:"episode,omitempty"`
	EpisodeAlt  string `json:"episodeAlt,omitempty"`
	Rip         string `json:"rip,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	TrackNumber string `json:"trackNumber,omitempty"`
	TrackTitle  string `json:"trackTitle,omitempty"`
	// Languages is never empty.
	Languages []string `json:"languages"`
	Year      int      `json:"year,omitempty"`
}

// IsEpisodic reports whether an episode marker was found.
func (t ParsedTitle) IsEpisodic() bool {
	return t.Episode != ""
}

func (t ParsedTitle) String() string {
	return fmt.Sprintf("%q (name=%q season=%q episode=%q rip=%q langs=%v)",
		t.DisplayName, t.Name, t.Season, t.Episode, t.Rip, t.Languages)
}

// Parse builds a ParsedTitle from a release name. Alternates are other
// names for the same media, typically the parent directories of a file.
// The first alternate carrying a longer rip tag than raw supplies the name,
// season, episode, year and rip; languages are merged from every candidate.
//
// Parse accepts any input and never fails: unrecognized structure simply
// leaves the corresponding fields empty.
func Parse(raw string, alternates ...string) ParsedTitle {
	t := parseOne(raw)

	langSets := [][]string{t.Languages}
	adopted := false
	for _, alt := range alternates {
		at := parseOne(alt)
		langSets = append(langSets, at.Languages)

		if adopted || len(at.Rip) <= len(t.Rip) {
			continue
		}

		log.Debug().
			Str("raw", raw).
			Str("alternate", alt).
			Str("rip", at.Rip).
			Msg("using alternate name with longer rip tag")

		t.FullName = at.FullName
		t.Name = at.Name
		t.Season = at.Season
		t.Episode = at.Episode
		t.Year = at.Year
		t.Rip = at.Rip
		adopted = true
	}

	t.Languages = MergeLanguages(langSets...)
	t.DisplayName = displayName(t)
	return t
}

func parseOne(raw string) ParsedTitle {
	t := ParsedTitle{
		Raw:      raw,
		FullName: Clean(raw, LevelYears),
		Rip:      ExtractRip(raw),
		Year:     GetYear(raw),
	}

	if ep, ok := ExtractEpisode(raw); ok {
		t.Name = ep.Name
		t.Season = ep.Season
		t.Episode = ep.Episode
		t.EpisodeAlt = ep.EpisodeAlt
		if len(ep.Residual) > len(t.Rip) {
			t.Rip = ep.Residual
		}
	} else {
		t.Name = t.FullName
	}

	// without a season, short numbers are usually part of the name; keep
	// everything before the release year instead
	if t.Season == "" && len(t.Episode) < 2 {
		t.FullName = Clean(raw, LevelLastYear)
	}

	if audio, ok := SplitAudio(Clean(raw, LevelBase)); ok {
		t.Artist = audio.Artist
		t.Album = audio.Album
		t.TrackNumber = audio.TrackNumber
		t.TrackTitle = audio.TrackTitle
	}

	langSource := t.Rip
	if langSource == "" {
		langSource = raw
	}
	t.Languages = DetectLanguages(langSource)

	return t
}

func displayName(t ParsedTitle) string {
	switch {
	case t.EpisodeAlt != "" && !IsTVRip(t.Rip):
		return strings.TrimSpace(t.Name + " " + t.EpisodeAlt)
	case t.Episode != "":
		marker := t.Episode
		if t.Season != "" {
			marker = t.Season + "x" + t.Episode
		}
		return strings.TrimSpace(t.Name + " " + marker)
	default:
		return t.FullName
	}
}

// HasLanguage reports whether any of langs was detected in t.
func (t ParsedTitle) HasLanguage(langs ...string) bool {
	for _, l := range langs {
		if slices.Contains(t.Languages, l) {
			return true
		}
	}
	return false
}

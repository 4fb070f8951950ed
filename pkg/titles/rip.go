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

// Rip vocabulary. The alternations are spliced into larger patterns as-is,
// so a top-level "|" binds to the surrounding separators.
const (
	ripPrePattern    = `\d*[\W_]*(cd|dvd)[\W_]*\d*|pal|ntsc|(480|576|720|1080)[pi]`
	ripMoviesPattern = `blu[\W_]*ray|md|screener|ts|teaser|cam|r5|(bd|br|dvd|web|vod|dtt)rip|` +
		`dvd[\W_]*(r|rip|scr)?|dvd\w*|(bd|br)[\W_]*scr`
	ripTVPattern     = `[hp]dtv|stv|tv[\W_]?rip`
	ripFormatPattern = `ac3|xvid|divx|hd|[xh]264|rmvb`
	ripExtraPattern  = `ws|limited|final|proper|multi|repack([\W_]*\dcd)?|ld|hd`
)

var (
	ripCandidates = buildRipCandidates()

	tvRipRe    = tokenPattern(ripTVPattern)
	movieRipRe = tokenPattern(ripMoviesPattern)
)

// buildRipCandidates compiles the rip grammars in the order they are tried:
// extra+extra, extra+source, disc/resolution, source, format. Each one must
// start on a separator and runs to the end of the string.
func buildRipCandidates() []*regexp.Regexp {
	langs := `((` + languageAlternation() + `)[\W_]+)*`
	group := func(p string) string {
		return langs + `([\W_]*` + p + `[\W_]*)`
	}

	pre := group(ripPrePattern)
	source := langs + `([\W_]*` + ripMoviesPattern + `|` + ripTVPattern + `[\W_]*)`
	format := group(ripFormatPattern)
	extra := group(ripExtraPattern)

	patterns := []string{
		extra + `[\W_]*` + extra,
		extra + `[\W_]*` + source,
		pre,
		source,
		format,
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)[\W_]`+p+`([\W_].*$|$)`))
	}
	return compiled
}

// tokenPattern matches p as a whole token, case-insensitively.
func tokenPattern(p string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[\W_])(?:` + p + `)(?:[\W_]|$)`)
}

// ExtractRip returns the quality/source/format suffix of a release name,
// including its leading separator. When several grammars match, the longest
// match wins. Returns "" when nothing looks like a rip.
//
// Examples:
//   - "Movie.Name.2010.DVDRip.XviD-GRP" → ".DVDRip.XviD-GRP"
//   - "show name s03e02 HDTV XviD TEAM" → " HDTV XviD TEAM"
func ExtractRip(s string) string {
	var best string
	for _, re := range ripCandidates {
		if m := re.FindString(s); len(m) > len(best) {
			best = m
		}
	}
	return best
}

// IsTVRip reports whether s contains a television source marker (HDTV, PDTV,
// TVRip...).
func IsTVRip(s string) bool {
	return s != "" && tvRipRe.MatchString(s)
}

// IsMovieRip reports whether s contains a movie source marker (BluRay,
// DVDRip, screener, cam...).
func IsMovieRip(s string) bool {
	return s != "" && movieRipRe.MatchString(s)
}

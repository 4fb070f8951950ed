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

// Package mediainfo describes media files on disk, using the surrounding
// directory names to fill in what the file name alone doesn't say.
package mediainfo

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/mediacore/mediacore/pkg/titles"
)

// Subtypes.
const (
	SubtypeTV     = "tv"
	SubtypeMovies = "movies"
	SubtypeMusic  = "music"
)

// DefaultTVSizeMaxMB is the size under which an episodic video is assumed to
// be a TV episode even without an explicit sNNeNN token.
const DefaultTVSizeMaxMB = 600

var tvShowCheckRe = regexp.MustCompile(`(?i)[\W_]s\d{2}e\d{2}[\W_]`)

// Options tunes FileInfo.
type Options struct {
	TVSizeMaxMB float64
	// Workers bounds concurrent FileInfo calls in Scan, default 4.
	Workers int
}

// Info is what FileInfo knows about a file.
type Info struct {
	Path        string   `json:"path"`
	Type        string   `json:"type"`
	Subtype     string   `json:"subtype"`
	FullName    string   `json:"fullName"`
	DisplayName string   `json:"displayName"`
	Name        string   `json:"name"`
	Season      string   `json:"season,omitempty"`
	Episode     string   `json:"episode,omitempty"`
	Rip         string   `json:"rip,omitempty"`
	Languages   []string `json:"languages"`
	Year        int      `json:"year,omitempty"`
	Size        uint64   `json:"size"`
}

// FileInfo parses the file at path. The parent and grand-parent directory
// names are used as alternates, so "Show.S01.720p/e05.mkv" still gets its
// rip from the directory.
func FileInfo(fs afero.Fs, path string, opts Options) (Info, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	fileType, err := FileType(fs, path)
	if err != nil {
		return Info{}, err
	}

	base := filepath.Base(path)
	name := base[:len(base)-len(filepath.Ext(base))]
	dir := filepath.Dir(path)
	alternates := []string{filepath.Base(dir), filepath.Base(filepath.Dir(dir))}

	t := titles.Parse(name, alternates...)
	info := Info{
		Path:        path,
		Type:        fileType,
		FullName:    t.FullName,
		DisplayName: t.DisplayName,
		Name:        t.Name,
		Season:      t.Season,
		Episode:     t.Episode,
		Rip:         t.Rip,
		Languages:   t.Languages,
		Year:        t.Year,
		Size:        uint64(max(fi.Size(), 0)),
	}

	maxMB := opts.TVSizeMaxMB
	if maxMB <= 0 {
		maxMB = DefaultTVSizeMaxMB
	}
	sizeMB := float64(info.Size) / (1024 * 1024)

	switch {
	case fileType == TypeAudio:
		info.Subtype = SubtypeMusic
	case t.Episode != "" && (tvShowCheckRe.MatchString(base) || sizeMB <= maxMB):
		info.Subtype = SubtypeTV
	default:
		info.Subtype = SubtypeMovies
	}

	log.Debug().
		Str("path", path).
		Str("type", info.Type).
		Str("subtype", info.Subtype).
		Str("display", info.DisplayName).
		Str("size", humanize.IBytes(info.Size)).
		Msg("file info")

	return info, nil
}

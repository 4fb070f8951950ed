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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/mediacore/mediacore/pkg/config"
	"github.com/mediacore/mediacore/pkg/mediainfo"
	"github.com/mediacore/mediacore/pkg/titles"
)

var ErrUnknownFormat = errors.New("unknown output format")

type titleRow struct {
	Raw         string `csv:"raw" yaml:"raw"`
	DisplayName string `csv:"display_name" yaml:"display_name"`
	Name        string `csv:"name" yaml:"name"`
	Season      string `csv:"season" yaml:"season,omitempty"`
	Episode     string `csv:"episode" yaml:"episode,omitempty"`
	Rip         string `csv:"rip" yaml:"rip,omitempty"`
	Languages   string `csv:"languages" yaml:"languages"`
	Year        string `csv:"year" yaml:"year,omitempty"`
	Artist      string `csv:"artist" yaml:"artist,omitempty"`
	Album       string `csv:"album" yaml:"album,omitempty"`
}

func newTitleRow(t *titles.ParsedTitle) titleRow {
	row := titleRow{
		Raw:         t.Raw,
		DisplayName: t.DisplayName,
		Name:        t.Name,
		Season:      t.Season,
		Episode:     t.Episode,
		Rip:         t.Rip,
		Languages:   strings.Join(t.Languages, " "),
		Artist:      t.Artist,
		Album:       t.Album,
	}
	if t.Year > 0 {
		row.Year = strconv.Itoa(t.Year)
	}
	return row
}

type matchRow struct {
	Candidate  string  `csv:"candidate" json:"candidate" yaml:"candidate"`
	Matched    bool    `csv:"matched" json:"matched" yaml:"matched"`
	Ranked     bool    `csv:"ranked" json:"ranked" yaml:"ranked"`
	Similarity float64 `csv:"similarity" json:"similarity" yaml:"similarity"`
}

type infoRow struct {
	Path        string `csv:"path" yaml:"path"`
	Type        string `csv:"type" yaml:"type"`
	Subtype     string `csv:"subtype" yaml:"subtype"`
	DisplayName string `csv:"display_name" yaml:"display_name"`
	Season      string `csv:"season" yaml:"season,omitempty"`
	Episode     string `csv:"episode" yaml:"episode,omitempty"`
	Rip         string `csv:"rip" yaml:"rip,omitempty"`
	Languages   string `csv:"languages" yaml:"languages"`
	Size        string `csv:"size" yaml:"size"`
}

func newInfoRow(info *mediainfo.Info) infoRow {
	return infoRow{
		Path:        info.Path,
		Type:        info.Type,
		Subtype:     info.Subtype,
		DisplayName: info.DisplayName,
		Season:      info.Season,
		Episode:     info.Episode,
		Rip:         info.Rip,
		Languages:   strings.Join(info.Languages, " "),
		Size:        humanize.IBytes(info.Size),
	}
}

func writeTitles(w io.Writer, format string, parsed []titles.ParsedTitle) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, parsed)
	case config.OutputText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i := range parsed {
			t := &parsed[i]
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n",
				t.DisplayName, t.Rip, strings.Join(t.Languages, ","))
		}
		return flush(tw)
	}

	rows := make([]titleRow, len(parsed))
	for i := range parsed {
		rows[i] = newTitleRow(&parsed[i])
	}
	return writeRows(w, format, rows)
}

func writeMatches(w io.Writer, format string, rows []matchRow) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, rows)
	case config.OutputText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range rows {
			mark := "-"
			if r.Matched {
				mark = "+"
			}
			sim := ""
			if r.Ranked {
				sim = strconv.FormatFloat(r.Similarity, 'f', 3, 64)
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, sim, r.Candidate)
		}
		return flush(tw)
	}
	return writeRows(w, format, rows)
}

func writeInfos(w io.Writer, format string, infos []mediainfo.Info) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, infos)
	case config.OutputText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i := range infos {
			info := &infos[i]
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				info.Subtype, info.DisplayName, humanize.IBytes(info.Size), info.Path)
		}
		return flush(tw)
	}

	rows := make([]infoRow, len(infos))
	for i := range infos {
		rows[i] = newInfoRow(&infos[i])
	}
	return writeRows(w, format, rows)
}

// writeRows handles the flat formats shared by every command.
func writeRows[T any](w io.Writer, format string, rows []T) error {
	switch format {
	case config.OutputCSV:
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to write yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func flush(tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

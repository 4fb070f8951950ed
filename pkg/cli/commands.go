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
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mediacore/mediacore/pkg/mediainfo"
	"github.com/mediacore/mediacore/pkg/search"
	"github.com/mediacore/mediacore/pkg/titles"
	"github.com/mediacore/mediacore/pkg/titles/matcher"
)

var ErrMissingArgs = errors.New("missing arguments")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ParseAll parses names concurrently, keeping their order.
func ParseAll(ctx context.Context, names, alternates []string, workers int) ([]titles.ParsedTitle, error) {
	results := make([]titles.ParsedTitle, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = titles.Parse(name, alternates...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to parse titles: %w", err)
	}
	return results, nil
}

func runParse(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("parse")
	var alternates stringList
	fs.Var(&alternates, "alt", "alternate name, e.g. the parent directory (repeatable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid parse flags: %w", err)
	}

	names, err := inputLines(fs.Args(), app.In)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: no names to parse", ErrMissingArgs)
	}

	parsed, err := ParseAll(ctx, names, alternates, app.Cfg.Workers())
	if err != nil {
		return err
	}
	return writeTitles(app.Out, app.format(), parsed)
}

func runMatch(_ context.Context, app *App, args []string) error {
	fs := newFlagSet("match")
	mode := fs.String("mode", app.Cfg.MatcherMode(), "matcher mode (default, all, tv, word_loose, word_contains)")
	minSim := fs.Float64("min", app.Cfg.MinSimilarity(), "minimum similarity for ranking")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid match flags: %w", err)
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: match <query> [candidates...]", ErrMissingArgs)
	}

	query := titles.Parse(fs.Arg(0))
	m, err := matcher.Build(query, matcher.Mode(*mode))
	if err != nil {
		return err
	}

	candidates, err := inputLines(fs.Args()[1:], app.In)
	if err != nil {
		return err
	}

	similarity := make(map[string]float64, len(candidates))
	for _, fm := range matcher.Rank(query, m, candidates, float32(*minSim)) {
		similarity[fm.Candidate] = float64(fm.Similarity)
	}

	rows := make([]matchRow, len(candidates))
	for i, c := range candidates {
		sim, ranked := similarity[c]
		rows[i] = matchRow{
			Candidate:  c,
			Matched:    m.MatchString(c),
			Ranked:     ranked,
			Similarity: sim,
		}
	}

	log.Debug().
		Str("mode", string(m.Mode())).
		Str("pattern", m.String()).
		Int("candidates", len(candidates)).
		Msg("matched candidates")
	return writeMatches(app.Out, app.format(), rows)
}

func runNext(_ context.Context, app *App, args []string) error {
	fs := newFlagSet("next")
	advance := fs.String("advance", string(search.AdvanceEpisode), "episode or season")
	category := fs.String("category", search.CategoryTV, "search category")
	previous := fs.Bool("previous", false, "print the previous episode instead")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid next flags: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: next <name>", ErrMissingArgs)
	}

	t := titles.Parse(fs.Arg(0))
	if !t.IsEpisodic() {
		return fmt.Errorf("no episode found in %q", fs.Arg(0))
	}

	if *previous {
		current := t
		if search.AbsoluteNumbering(t, *category) {
			current.Season, current.Episode = "", t.EpisodeAlt
		}
		season, episode, ok := titles.PreviousEpisode(current)
		if !ok {
			return fmt.Errorf("no previous episode for %q", fs.Arg(0))
		}
		_, err := fmt.Fprintln(app.Out, strings.Join(nonEmpty(t.Name, season, episode), " "))
		return err
	}

	s := search.FromTitle(t, *category, app.Cfg.MatcherMode())
	next, ok := s.Next(search.Advance(*advance))
	if !ok {
		return fmt.Errorf("cannot advance %s of %q", *advance, fs.Arg(0))
	}
	_, err := fmt.Fprintln(app.Out, next.Query())
	return err
}

func runQuery(_ context.Context, app *App, args []string) error {
	fs := newFlagSet("query")
	category := fs.String("category", search.CategoryMovies, "movies, tv, anime or music")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid query flags: %w", err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: query <text>", ErrMissingArgs)
	}
	_, err := fmt.Fprintln(app.Out, search.CleanQuery(strings.Join(fs.Args(), " "), *category))
	return err
}

func runFilter(_ context.Context, app *App, args []string) error {
	fs := newFlagSet("filter")
	category := fs.String("category", search.CategoryMovies, "search category whose filters apply")
	unique := fs.Bool("unique", false, "drop results with duplicate names")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid filter flags: %w", err)
	}
	if app.In == nil {
		return fmt.Errorf("%w: results are read from stdin", ErrMissingArgs)
	}

	filters := app.Cfg.SearchFilters(*category)

	var results []search.Result
	sc := bufio.NewScanner(app.In)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		title, size, hasSize := strings.Cut(line, "\t")
		r := search.Result{Title: title}
		if hasSize {
			if err := r.SetSize(size); err != nil {
				log.Warn().Err(err).Str("title", title).Msg("ignoring result size")
			}
		}
		if r.Validate(filters) {
			results = append(results, r)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}

	if *unique {
		results = search.Unique(results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(app.Out, r.Title); err != nil {
			return err
		}
	}
	return nil
}

func runScan(ctx context.Context, app *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: scan <dir>", ErrMissingArgs)
	}
	infos, err := mediainfo.Scan(ctx, app.Fs, args[0], mediainfo.Options{
		TVSizeMaxMB: app.Cfg.TVSizeMaxMB(),
		Workers:     app.Cfg.Workers(),
	})
	if err != nil {
		return err
	}
	return writeInfos(app.Out, app.format(), infos)
}

func runWatch(ctx context.Context, app *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: watch <dir>", ErrMissingArgs)
	}
	w, err := mediainfo.NewWatcher(app.Fs, args[0], mediainfo.Options{
		TVSizeMaxMB: app.Cfg.TVSizeMaxMB(),
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		for info := range w.Infos() {
			if err := writeInfos(app.Out, app.format(), []mediainfo.Info{info}); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

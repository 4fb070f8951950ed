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

// Package cli implements the mediacore command line: parsing release names,
// testing candidates against a query, advancing searches and describing
// media files on disk.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/mediacore/mediacore/pkg/config"
	"github.com/mediacore/mediacore/pkg/helpers"
)

var ErrUnknownCommand = errors.New("unknown command")

// App carries what every command needs.
type App struct {
	Cfg *config.Instance
	Fs  afero.Fs
	In  io.Reader
	Out io.Writer
	// Format overrides the configured output format when set.
	Format string
}

func (a *App) format() string {
	if a.Format != "" {
		return a.Format
	}
	return a.Cfg.OutputFormat()
}

type command struct {
	run   func(ctx context.Context, app *App, args []string) error
	usage string
}

var commands = map[string]command{
	"parse":  {run: runParse, usage: "parse release names (arguments or stdin lines)"},
	"match":  {run: runMatch, usage: "test and rank candidates against a query"},
	"next":   {run: runNext, usage: "print the next or previous episode search"},
	"query":  {run: runQuery, usage: "clean a query for a search category"},
	"filter": {run: runFilter, usage: "filter scraped results (\"title<TAB>size\" stdin lines)"},
	"scan":   {run: runScan, usage: "describe every media file under a directory"},
	"watch":  {run: runWatch, usage: "describe media files as they appear in a directory"},
}

// Run dispatches args[0] to its command.
func Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	log.Debug().Str("command", args[0]).Strs("args", args[1:]).Msg("running command")
	return cmd.run(ctx, app, args[1:])
}

// Usage lists the commands.
func Usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	_, _ = fmt.Fprintf(w, "Usage: %s [flags] <command> [args]\n\nCommands:\n", config.AppName)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].usage)
	}
	_, _ = fmt.Fprintln(w, "\nFlags:")
	flag.PrintDefaults()
}

type Flags struct {
	ConfigDir *string
	Format    *string
	Debug     *bool
	Version   *bool
}

// SetupFlags defines the global flags.
func SetupFlags() *Flags {
	return &Flags{
		ConfigDir: flag.String(
			"config-dir",
			filepath.Join(xdg.ConfigHome, config.AppName),
			"directory holding "+config.CfgFile,
		),
		Format: flag.String(
			"format",
			"",
			"output format: text, json, csv or yaml",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"log debug messages to stderr",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

// Setup loads the config and starts logging. Debug output goes to stderr
// when requested, always to the log file.
func Setup(f *Flags, defaults config.Values) (*config.Instance, error) {
	fs := afero.NewOsFs()

	cfg, err := config.NewConfig(fs, *f.ConfigDir, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cfg, f); err != nil {
		return nil, err
	}

	debug := cfg.DebugLogging()
	var writers []io.Writer
	if *f.Debug {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	logFile := filepath.Join(xdg.DataHome, config.AppName, config.LogsDir, config.LogFile)
	if err := helpers.InitLogging(logFile, debug, writers...); err != nil {
		return nil, fmt.Errorf("failed to init logging: %w", err)
	}

	log.Info().Msgf("mediacore v%s, config: %s", config.AppVersion, cfg.Path())
	return cfg, nil
}

// applyFlags layers the command line over the loaded config.
func applyFlags(cfg *config.Instance, f *Flags) error {
	if f.Format != nil && *f.Format != "" {
		if err := cfg.SetOutputFormat(*f.Format); err != nil {
			return fmt.Errorf("invalid -format: %w", err)
		}
	}
	if f.Debug != nil && *f.Debug {
		cfg.SetDebugLogging(true)
	}
	return nil
}

// inputLines returns args, or the non-empty lines of in when args is empty.
func inputLines(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 || in == nil {
		return args, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	var lines []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

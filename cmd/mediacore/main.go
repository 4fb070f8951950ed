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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/mediacore/mediacore/pkg/cli"
	"github.com/mediacore/mediacore/pkg/config"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flag.Usage = func() { cli.Usage(os.Stderr) }
	flag.Parse()

	if *flags.Version {
		_, _ = fmt.Printf("mediacore v%s\n", config.AppVersion)
		return nil
	}

	cfg, err := cli.Setup(flags, config.BaseDefaults)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var in *os.File
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		in = os.Stdin
	}

	app := &cli.App{
		Cfg: cfg,
		Fs:  afero.NewOsFs(),
		Out: os.Stdout,
	}
	if in != nil {
		app.In = in
	}

	err = cli.Run(ctx, app, flag.Args())
	if errors.Is(err, cli.ErrUnknownCommand) {
		cli.Usage(os.Stderr)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

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
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediacore/mediacore/pkg/config"
)

func newTestApp(t *testing.T, in string) (*App, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	cfg, err := config.NewConfig(fs, "/config", config.BaseDefaults)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := &App{
		Cfg: cfg,
		Fs:  fs,
		Out: out,
	}
	if in != "" {
		app.In = strings.NewReader(in)
	}
	return app, out
}

func decodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, "")

	err := Run(context.Background(), app, nil)
	require.ErrorIs(t, err, ErrUnknownCommand)

	err = Run(context.Background(), app, []string{"rename"})
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Usage(&buf)

	out := buf.String()
	for name := range commands {
		assert.Contains(t, out, name)
	}
	assert.Less(t, strings.Index(out, "filter"), strings.Index(out, "watch"))
}

func TestInputLines(t *testing.T) {
	t.Parallel()

	lines, err := inputLines([]string{"a"}, strings.NewReader("b\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	lines, err = inputLines(nil, strings.NewReader("  b \n\n\tc\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, lines)

	lines, err = inputLines(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStringList(t *testing.T) {
	t.Parallel()

	var l stringList
	require.NoError(t, l.Set("a"))
	require.NoError(t, l.Set("b"))
	assert.Equal(t, "a,b", l.String())
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "c"}, nonEmpty("a", "", "c"))
	assert.Empty(t, nonEmpty("", ""))
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		format    string
		wantFmt   string
		debug     bool
		wantDebug bool
		wantErr   bool
	}{
		{name: "no overrides", wantFmt: config.OutputText},
		{name: "format", format: config.OutputJSON, wantFmt: config.OutputJSON},
		{name: "debug", debug: true, wantFmt: config.OutputText, wantDebug: true},
		{name: "unknown format", format: "xml", wantFmt: config.OutputText, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, _ := newTestApp(t, "")
			f := &Flags{Format: &tt.format, Debug: &tt.debug}

			err := applyFlags(app.Cfg, f)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantFmt, app.Cfg.OutputFormat())
			assert.Equal(t, tt.wantDebug, app.Cfg.DebugLogging())
			assert.Equal(t, tt.wantFmt, app.format())
		})
	}
}

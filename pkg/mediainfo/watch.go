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

package mediainfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultSettle is how long a file must go without writes before it is
// reported.
const DefaultSettle = 2 * time.Second

var errWatcherClosed = errors.New("fsnotify watcher closed")

// Watcher reports media files created in a directory once they stop
// changing.
type Watcher struct {
	fs      afero.Fs
	clock   clockwork.Clock
	watcher *fsnotify.Watcher
	infos   chan Info
	pending map[string]time.Time
	opts    Options
	settle  time.Duration
}

type WatcherOption func(*Watcher)

// WithClock replaces the real clock, for tests.
func WithClock(c clockwork.Clock) WatcherOption {
	return func(w *Watcher) { w.clock = c }
}

func WithSettle(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.settle = d }
}

// NewWatcher watches dir (not recursively). Files are read through afs,
// which must see the same files as the OS.
func NewWatcher(afs afero.Fs, dir string, opts Options, options ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      afs,
		clock:   clockwork.NewRealClock(),
		watcher: fw,
		infos:   make(chan Info, 16),
		pending: make(map[string]time.Time),
		opts:    opts,
		settle:  DefaultSettle,
	}
	for _, o := range options {
		o(w)
	}
	if w.settle <= 0 {
		w.settle = DefaultSettle
	}

	log.Debug().Str("dir", dir).Msg("started watching for media files")
	return w, nil
}

// pollInterval is how often pending files are checked. It is never zero,
// which NewTicker rejects.
func (w *Watcher) pollInterval() time.Duration {
	return max(w.settle/2, time.Millisecond)
}

// Infos returns the channel of settled files. It is closed when Run returns.
func (w *Watcher) Infos() <-chan Info {
	return w.infos
}

// Run processes events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.infos)
	defer func() { _ = w.watcher.Close() }()

	ticker := w.clock.NewTicker(w.pollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errWatcherClosed
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !IsMedia(event.Name) {
				continue
			}
			w.pending[event.Name] = w.clock.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errWatcherClosed
			}
			log.Warn().Err(err).Msg("fsnotify error")

		case <-ticker.Chan():
			w.flush(ctx)
		}
	}
}

func (w *Watcher) flush(ctx context.Context) {
	now := w.clock.Now()
	for path, seen := range w.pending {
		if now.Sub(seen) < w.settle {
			continue
		}
		delete(w.pending, path)

		info, err := FileInfo(w.fs, path, w.opts)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read watched file")
			continue
		}

		select {
		case w.infos <- info:
		case <-ctx.Done():
			return
		}
	}
}

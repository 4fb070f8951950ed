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
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// IsMedia reports whether path has a video or audio extension.
func IsMedia(path string) bool {
	switch TypeByExtension(path) {
	case TypeVideo, TypeAudio:
		return true
	default:
		return false
	}
}

// Scan returns the info of every media file under root, sorted by path.
// Files that disappear while scanning are skipped.
func Scan(ctx context.Context, afs afero.Fs, root string, opts Options) ([]Info, error) {
	paths, err := mediaFiles(afs, root)
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	infos := make([]Info, len(paths))
	found := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := FileInfo(afs, path, opts)
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("path", path).Msg("file vanished during scan")
				return nil
			} else if err != nil {
				return err
			}
			infos[i] = info
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	results := make([]Info, 0, len(infos))
	for i, info := range infos {
		if found[i] {
			results = append(results, info)
		}
	}

	log.Debug().Str("root", root).Int("files", len(results)).Msg("scan complete")
	return results, nil
}

// mediaFiles lists media files under root. The OS filesystem is walked in
// parallel, anything else through afero.
func mediaFiles(afs afero.Fs, root string) ([]string, error) {
	if _, ok := afs.(*afero.OsFs); ok {
		return osMediaFiles(root)
	}

	var paths []string
	err := afero.Walk(afs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && IsMedia(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}

func osMediaFiles(root string) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)
	conf := fastwalk.Config{Follow: true}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}
		if d.IsDir() || !IsMedia(path) {
			return nil
		}
		mu.Lock()
		paths = append(paths, filepath.Clean(path))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}

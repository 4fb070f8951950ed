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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// File types.
const (
	TypeVideo     = "video"
	TypeAudio     = "audio"
	TypeImage     = "image"
	TypeSubtitles = "subtitles"
	TypeArchive   = "archive"
)

var extensionTypes = map[string]string{
	".avi":  TypeVideo,
	".divx": TypeVideo,
	".m2ts": TypeVideo,
	".m4v":  TypeVideo,
	".mkv":  TypeVideo,
	".mov":  TypeVideo,
	".mp4":  TypeVideo,
	".mpeg": TypeVideo,
	".mpg":  TypeVideo,
	".ogm":  TypeVideo,
	".ts":   TypeVideo,
	".webm": TypeVideo,
	".wmv":  TypeVideo,
	".aac":  TypeAudio,
	".flac": TypeAudio,
	".m4a":  TypeAudio,
	".mp3":  TypeAudio,
	".ogg":  TypeAudio,
	".opus": TypeAudio,
	".wav":  TypeAudio,
	".wma":  TypeAudio,
	".gif":  TypeImage,
	".jpeg": TypeImage,
	".jpg":  TypeImage,
	".png":  TypeImage,
	".ass":  TypeSubtitles,
	".srt":  TypeSubtitles,
	".ssa":  TypeSubtitles,
	".sub":  TypeSubtitles,
	".rar":  TypeArchive,
	".zip":  TypeArchive,
	".7z":   TypeArchive,
}

// TypeByExtension returns the file type for a path's extension, or "" when
// the extension is unknown.
func TypeByExtension(path string) string {
	return extensionTypes[strings.ToLower(filepath.Ext(path))]
}

// FileType returns the type of the file at path. Known extensions win; other
// files are sniffed by content and typed by their MIME top-level type.
// Directories and unrecognized content give "".
func FileType(fs afero.Fs, path string) (string, error) {
	if t := TypeByExtension(path); t != "" {
		return t, nil
	}

	fi, err := fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	for m := mt; m != nil; m = m.Parent() {
		top, _, _ := strings.Cut(m.String(), "/")
		switch top {
		case TypeVideo, TypeAudio, TypeImage:
			return top, nil
		}
	}
	return "", nil
}

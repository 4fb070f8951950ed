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

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of every word and lower-cases the
// rest: "the WIRE" → "The Wire".
func Capitalize(s string) string {
	// a Caser keeps state, so one per call
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

// IsURL reports whether s parses as a URL with a scheme.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

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

package matcher

import (
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/mediacore/mediacore/pkg/titles"
	"github.com/rs/zerolog/log"
)

// FuzzyMatch is a candidate name with its similarity to a query.
type FuzzyMatch struct {
	Candidate  string
	Similarity float32
}

// FindFuzzyMatches returns candidates similar to query using Jaro-Winkler
// similarity, which weights matching prefixes heavily: release names almost
// always agree on their first words. Candidates whose length differs from
// the query by more than maxDistance are skipped without scoring. Exact
// matches are skipped too. Results are sorted best first.
func FindFuzzyMatches(query string, candidates []string, maxDistance int, minSimilarity float32) []FuzzyMatch {
	var matches []FuzzyMatch

	for _, candidate := range candidates {
		if candidate == query {
			continue
		}

		lenDiff := len(query) - len(candidate)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}

		similarity := edlib.JaroWinklerSimilarity(query, candidate)

		if similarity > 0.7 {
			log.Debug().
				Str("query", query).
				Str("candidate", candidate).
				Float32("similarity", similarity).
				Float32("minSimilarity", minSimilarity).
				Msg("fuzzy match candidate evaluation")
		}

		if similarity >= minSimilarity {
			matches = append(matches, FuzzyMatch{
				Candidate:  candidate,
				Similarity: similarity,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}

// ApplyDamerauLevenshteinTieBreaker re-ranks the top N fuzzy matches by
// Damerau-Levenshtein distance to the query, which handles transposed
// letters ("teh wire") better than Jaro-Winkler alone.
func ApplyDamerauLevenshteinTieBreaker(query string, matches []FuzzyMatch, topN int) []FuzzyMatch {
	if len(matches) < 2 {
		return matches
	}

	candidates := matches
	if topN > 0 && len(matches) > topN {
		candidates = matches[:topN]
	}

	type dlScore struct {
		match    FuzzyMatch
		distance int
	}

	scored := make([]dlScore, len(candidates))
	for i, candidate := range candidates {
		scored[i] = dlScore{
			match:    candidate,
			distance: edlib.DamerauLevenshteinDistance(query, candidate.Candidate),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].distance < scored[j].distance
	})

	result := make([]FuzzyMatch, len(scored))
	for i, s := range scored {
		result[i] = s.match
	}

	return result
}

const (
	// rankMaxLengthDiff bounds how much longer or shorter a candidate's
	// cleaned name may be than the query's.
	rankMaxLengthDiff = 16
	// rankTieBreakTopN is how many of the best fuzzy matches get re-ranked
	// by edit distance.
	rankTieBreakTopN = 5
)

// Rank keeps the candidates accepted by m and orders them by how close
// their cleaned display name is to the display name of t. Exact names come
// first, the rest are scored with FindFuzzyMatches and the best few are
// re-ranked with ApplyDamerauLevenshteinTieBreaker. Candidates scoring below
// minSimilarity are dropped. Candidates sharing a name keep their input
// order.
func Rank(t titles.ParsedTitle, m *Matcher, candidates []string, minSimilarity float32) []FuzzyMatch {
	query := titles.Clean(t.DisplayName, titles.LevelWords)

	byName := make(map[string][]string)
	var names []string
	for _, candidate := range candidates {
		if !m.MatchString(candidate) {
			continue
		}
		name := titles.Clean(titles.Parse(candidate).DisplayName, titles.LevelWords)
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		byName[name] = append(byName[name], candidate)
	}
	if len(names) == 0 {
		return nil
	}

	var scored []FuzzyMatch
	if _, ok := byName[query]; ok {
		scored = append(scored, FuzzyMatch{Candidate: query, Similarity: 1})
	}
	fuzzy := FindFuzzyMatches(query, names, rankMaxLengthDiff, minSimilarity)
	reranked := ApplyDamerauLevenshteinTieBreaker(query, fuzzy, rankTieBreakTopN)
	scored = append(scored, reranked...)
	// the tie breaker only returns the top matches
	scored = append(scored, fuzzy[len(reranked):]...)

	ranked := make([]FuzzyMatch, 0, len(candidates))
	for _, s := range scored {
		for _, candidate := range byName[s.Candidate] {
			ranked = append(ranked, FuzzyMatch{
				Candidate:  candidate,
				Similarity: s.Similarity,
			})
		}
	}

	log.Debug().
		Str("query", query).
		Int("accepted", len(names)).
		Int("ranked", len(ranked)).
		Msg("ranked candidates")

	return ranked
}

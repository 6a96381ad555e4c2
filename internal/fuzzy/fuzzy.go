// Package fuzzy ranks candidate names by similarity to a mistyped input.
// The parser uses it for "did you mean" hints on unknown long arguments.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// Jaro-Winkler tuning: boost matches sharing a prefix of up to four bytes
// once the raw Jaro score passes the threshold.
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Matcher provides fuzzy matching functionality for CLI suggestions
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest finds the best matching string from candidates
// Returns empty string if no good match found
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the edit distance limit,
// best first. Comparison is case-insensitive and exact matches are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}

		distance := smetrics.WagnerFischer(input, lower, 1, 1, 1)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    score(input, lower, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score blends normalized edit distance with Jaro-Winkler similarity, which
// favours candidates sharing the input's prefix.
func score(input, candidate string, distance int) float64 {
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}
	edit := 1.0 - float64(distance)/float64(maxLen)
	jw := smetrics.JaroWinkler(input, candidate, jwBoostThreshold, jwPrefixSize)
	return 0.6*edit + 0.4*jw
}

// FindBestFlag finds the best matching flag name
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, flags)
}

// FindSuggestions returns up to maxSuggestions candidates, best first.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	suggestions := make([]string, len(matches))
	for i, match := range matches {
		suggestions[i] = match.Value
	}
	return suggestions
}

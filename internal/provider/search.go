package provider

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Closest returns the index of the record whose name best matches query.
// A case-insensitive substring hit beats edit distance; ties keep list order.
// Fuzzy matches further than half the candidate name away, counted in runes,
// are rejected.
func Closest(records []Record, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(records) == 0 {
		return -1, false
	}
	for i, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			return i, true
		}
	}
	best, bestDist := -1, 0
	for i, r := range records {
		d := levenshtein.ComputeDistance(q, strings.ToLower(r.Name))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist*2 > utf8.RuneCountInString(records[best].Name) {
		return -1, false
	}
	return best, true
}

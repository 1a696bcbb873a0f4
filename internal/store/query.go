package store

import "strings"

const maxSearchLimit = 5000

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern matching s as a literal
// substring. A blank s yields the empty string, which disables filtering.
func ContainsPattern(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(s) + "%"
}

// ClampSearchLimit applies the default and maximum to a search limit.
func ClampSearchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	return min(limit, maxSearchLimit)
}

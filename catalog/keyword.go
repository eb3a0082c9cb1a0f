package catalog

import (
	"strings"

	"gorm.io/gorm"
)

// ApplyKeyword appends the search predicate: a full-text match on
// name+description first, OR-combined with a case-insensitive substring
// fallback on name, slug and description. The fallback catches partial and
// short tokens the text index misses; both run in the same query.
// Blank input is a no-op.
func ApplyKeyword(q *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return q
	}

	pattern := "%" + EscapeLike(term) + "%"
	return q.Where(`
		to_tsvector('simple', products.name || ' ' || products.description) @@ plainto_tsquery('simple', ?)
		OR products.name ILIKE ?
		OR products.slug ILIKE ?
		OR products.description ILIKE ?
	`, term, pattern, pattern, pattern)
}

// EscapeLike escapes LIKE/ILIKE metacharacters so a literal % or _ in the
// search term does not act as a wildcard.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

package catalog

import (
	"fmt"
	"regexp"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// attrCodePattern is the allow-list for extra_attrs codes. A code is
// interpolated into a JSONB path expression, so anything outside this
// pattern is dropped before it can reach the SQL text.
var attrCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-. ]+$`)

// ApplyFilters attaches every applicable predicate from the filter state to
// the given query. Empty or malformed values are skipped silently, and the
// order of filter groups never changes the result set.
//
// Taxonomy, category and type membership is injected as "id IN (subquery)"
// rather than as joins, so multi-valued assignments cannot fan the row set
// out into duplicates.
func ApplyFilters(db *gorm.DB, q *gorm.DB, f models.FilterState) *gorm.DB {
	if ids := validIDs(f.Types); len(ids) > 0 {
		q = q.Where("products.product_type_id IN ?", ids)
	}

	if ids := validIDs(f.Categories); len(ids) > 0 {
		sub := db.Table("product_category_assignments AS pca").
			Select("pca.product_id").
			Where("pca.product_category_id IN ?", ids)
		q = q.Where("products.id IN (?)", sub)
	}

	for code, rawIDs := range f.Terms {
		ids := validIDs(rawIDs)
		if len(ids) == 0 {
			continue
		}
		sub := db.Table("product_term_assignments AS pta").
			Select("pta.product_id").
			Joins("JOIN terms t ON t.id = pta.term_id").
			Joins("JOIN attribute_groups g ON g.id = t.group_id").
			Where("g.code = ? AND pta.term_id IN ?", code, ids)
		q = q.Where("products.id IN (?)", sub)
	}

	if f.PriceMin != nil {
		q = q.Where("products.price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("products.price <= ?", *f.PriceMax)
	}

	for code, bound := range f.Ranges {
		if !ValidAttrCode(code) {
			continue
		}
		if bound.Min == nil && bound.Max == nil {
			continue
		}
		// code passed the allow-list above, so interpolating it into the
		// path expression cannot escape the quoted literal
		expr := fmt.Sprintf("(products.extra_attrs -> '%s' ->> 'value')::numeric", code)
		if bound.Min != nil {
			q = q.Where(expr+" >= ?", *bound.Min)
		}
		if bound.Max != nil {
			q = q.Where(expr+" <= ?", *bound.Max)
		}
	}

	return q
}

// ValidAttrCode reports whether an extra_attrs code is safe to use inside
// a generated JSONB path expression.
func ValidAttrCode(code string) bool {
	return attrCodePattern.MatchString(code)
}

// validIDs keeps only well-formed UUIDs. Bad ids coming off the query
// string are a client-side typo, not an error.
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if uuid.Validate(id) == nil {
			out = append(out, id)
		}
	}
	return out
}

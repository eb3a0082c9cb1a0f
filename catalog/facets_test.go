package catalog

import (
	"strings"
	"testing"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// nakedFrom replicates what AggregateFacets derives internally: the filtered
// id space as a bare DISTINCT-id subquery.
func nakedFrom(db *gorm.DB, f models.FilterState) func() *gorm.DB {
	return func() *gorm.DB {
		return ApplyFilters(db, baseQuery(db), f).Select("DISTINCT products.id")
	}
}

func facetSQL(q *gorm.DB) *gorm.Statement {
	var opts []models.FacetOption
	return q.Find(&opts).Statement
}

// ============================================================================
// Every dimension counts against the filtered id space
// ============================================================================

func TestFacetQueries_EmbedNakedIDSubquery(t *testing.T) {
	db := dryRunDB(t)
	f := models.FilterState{Types: []string{uuid.NewString()}}
	naked := nakedFrom(db, f)

	queries := map[string]*gorm.DB{
		"category": categoryFacetQuery(db, naked),
		"type":     typeFacetQuery(db, naked),
		"brand":    termGroupFacetQuery(db, naked, GroupBrand),
	}

	for name, q := range queries {
		sql := facetSQL(q).SQL.String()
		assert.Contains(t, sql, "DISTINCT products.id", "%s facet", name)
		assert.Contains(t, sql, "products.active", "%s facet scopes to active products", name)
		assert.Contains(t, sql, "products.product_type_id IN", "%s facet carries the current filters", name)
	}
}

// ============================================================================
// Ordering and the term cap
// ============================================================================

func TestFacetQueries_OrderCountDescThenPositionThenID(t *testing.T) {
	db := dryRunDB(t)
	naked := nakedFrom(db, models.FilterState{})

	assert.Contains(t, facetSQL(categoryFacetQuery(db, naked)).SQL.String(),
		"count DESC, c.position ASC, c.id ASC")
	assert.Contains(t, facetSQL(typeFacetQuery(db, naked)).SQL.String(),
		"count DESC, pt.position ASC, pt.id ASC")
	assert.Contains(t, facetSQL(termGroupFacetQuery(db, naked, GroupGrape)).SQL.String(),
		"count DESC, t.position ASC, t.id ASC")
}

func TestTermGroupFacetQuery_CapsOptions(t *testing.T) {
	db := dryRunDB(t)
	naked := nakedFrom(db, models.FilterState{})

	stmt := facetSQL(termGroupFacetQuery(db, naked, GroupBrand))

	assert.Contains(t, stmt.SQL.String(), "LIMIT")
	assert.Contains(t, stmt.Vars, termFacetLimit)
	assert.Contains(t, stmt.Vars, GroupBrand)

	// category and type dimensions are small and stay uncapped
	assert.NotContains(t, facetSQL(categoryFacetQuery(db, naked)).SQL.String(), "LIMIT")
}

// ============================================================================
// Narrowing: a dimension counts under its own active filter too
// ============================================================================

func TestTermGroupFacetQuery_SelfFilterIsIncluded(t *testing.T) {
	db := dryRunDB(t)
	brandID := uuid.NewString()
	f := models.FilterState{Terms: map[string][]string{GroupBrand: {brandID}}}

	stmt := facetSQL(termGroupFacetQuery(db, nakedFrom(db, f), GroupBrand))
	sql := stmt.SQL.String()

	// g.code appears twice: once for the facet dimension, once inside the
	// naked subquery's own brand predicate
	assert.GreaterOrEqual(t, strings.Count(sql, "g.code"), 2)
	assert.Contains(t, stmt.Vars, brandID)
}

// ============================================================================
// Numeric ranges
// ============================================================================

func TestNumericRangeQuery_PriceKeepsAllRows(t *testing.T) {
	db := dryRunDB(t)
	naked := nakedFrom(db, models.FilterState{})

	var nr models.NumericRange
	sql := numericRangeQuery(db, naked, "products.price", false).Find(&nr).Statement.SQL.String()

	assert.Contains(t, sql, "COALESCE(MIN(products.price), 0)::float8")
	assert.Contains(t, sql, "COALESCE(MAX(products.price), 0)::float8")
	assert.NotContains(t, sql, "IS NOT NULL")
}

func TestNumericRangeQuery_AlcoholExcludesNulls(t *testing.T) {
	db := dryRunDB(t)
	naked := nakedFrom(db, models.FilterState{})

	var nr models.NumericRange
	sql := numericRangeQuery(db, naked, "products.alcohol_percent", true).Find(&nr).Statement.SQL.String()

	assert.Contains(t, sql, "products.alcohol_percent IS NOT NULL")
}

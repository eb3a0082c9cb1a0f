package catalog

import (
	"context"
	"fmt"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"gorm.io/gorm"
)

// Well-known term-group codes surfaced as first-class facet dimensions.
const (
	GroupBrand  = "brand"
	GroupGrape  = "grape"
	GroupOrigin = "origin"
)

// termFacetLimit caps term-group facets so a high-cardinality group cannot
// blow up the response.
const termFacetLimit = 30

// AggregateFacets computes per-dimension counts and global numeric ranges
// for the current filter state. Counts are narrowing: every dimension is
// counted under the full filter set, including any filter already applied
// on that same dimension.
//
// rebuild must return a fresh filtered query (unsorted, unpaginated) on
// every call; each dimension re-derives a naked DISTINCT-id clone from it
// and joins its own tables independently, so the base query is never
// polluted by facet joins.
//
// Any dimension failing fails the whole computation: a silently missing
// facet is indistinguishable from "zero matches" to a client.
func AggregateFacets(ctx context.Context, db *gorm.DB, rebuild func() *gorm.DB) (*models.FacetResult, error) {
	naked := func() *gorm.DB {
		return rebuild().Select("DISTINCT products.id")
	}

	result := &models.FacetResult{}
	var err error

	if result.Categories, err = categoryFacet(ctx, db, naked); err != nil {
		return nil, fmt.Errorf("category facet: %w", err)
	}
	if result.Types, err = typeFacet(ctx, db, naked); err != nil {
		return nil, fmt.Errorf("type facet: %w", err)
	}
	if result.Brands, err = termGroupFacet(ctx, db, naked, GroupBrand); err != nil {
		return nil, fmt.Errorf("brand facet: %w", err)
	}
	if result.Grapes, err = termGroupFacet(ctx, db, naked, GroupGrape); err != nil {
		return nil, fmt.Errorf("grape facet: %w", err)
	}
	if result.Origins, err = termGroupFacet(ctx, db, naked, GroupOrigin); err != nil {
		return nil, fmt.Errorf("origin facet: %w", err)
	}

	if result.PriceRange, err = numericRange(ctx, db, naked, "products.price", false); err != nil {
		return nil, fmt.Errorf("price range: %w", err)
	}
	if result.AlcRange, err = numericRange(ctx, db, naked, "products.alcohol_percent", true); err != nil {
		return nil, fmt.Errorf("alcohol range: %w", err)
	}

	return result, nil
}

// Each dimension is a query builder plus a thin Scan wrapper; the builders
// carry the whole contract (naked id-space subquery, count-first ordering,
// term cap).

func categoryFacetQuery(db *gorm.DB, naked func() *gorm.DB) *gorm.DB {
	return db.
		Table("product_category_assignments AS pca").
		Select("c.id::text AS id, c.name AS name, c.slug AS slug, COUNT(DISTINCT pca.product_id)::int AS count").
		Joins("JOIN product_categories c ON c.id = pca.product_category_id").
		Where("c.active = ?", true).
		Where("pca.product_id IN (?)", naked()).
		Group("c.id, c.name, c.slug, c.position").
		Order("count DESC, c.position ASC, c.id ASC")
}

func categoryFacet(ctx context.Context, db *gorm.DB, naked func() *gorm.DB) ([]models.FacetOption, error) {
	opts := make([]models.FacetOption, 0)
	err := categoryFacetQuery(db, naked).WithContext(ctx).Scan(&opts).Error
	return opts, err
}

func typeFacetQuery(db *gorm.DB, naked func() *gorm.DB) *gorm.DB {
	return db.
		Table("product_types AS pt").
		Select("pt.id::text AS id, pt.name AS name, pt.slug AS slug, COUNT(DISTINCT p.id)::int AS count").
		Joins("JOIN products p ON p.product_type_id = pt.id").
		Where("pt.active = ?", true).
		Where("p.id IN (?)", naked()).
		Group("pt.id, pt.name, pt.slug, pt.position").
		Order("count DESC, pt.position ASC, pt.id ASC")
}

func typeFacet(ctx context.Context, db *gorm.DB, naked func() *gorm.DB) ([]models.FacetOption, error) {
	opts := make([]models.FacetOption, 0)
	err := typeFacetQuery(db, naked).WithContext(ctx).Scan(&opts).Error
	return opts, err
}

func termGroupFacetQuery(db *gorm.DB, naked func() *gorm.DB, code string) *gorm.DB {
	return db.
		Table("product_term_assignments AS pta").
		Select("t.id::text AS id, t.name AS name, t.slug AS slug, COUNT(DISTINCT pta.product_id)::int AS count").
		Joins("JOIN terms t ON t.id = pta.term_id").
		Joins("JOIN attribute_groups g ON g.id = t.group_id").
		Where("g.code = ? AND t.active = ?", code, true).
		Where("pta.product_id IN (?)", naked()).
		Group("t.id, t.name, t.slug, t.position").
		Order("count DESC, t.position ASC, t.id ASC").
		Limit(termFacetLimit)
}

func termGroupFacet(ctx context.Context, db *gorm.DB, naked func() *gorm.DB, code string) ([]models.FacetOption, error) {
	opts := make([]models.FacetOption, 0)
	err := termGroupFacetQuery(db, naked, code).WithContext(ctx).Scan(&opts).Error
	return opts, err
}

func numericRangeQuery(db *gorm.DB, naked func() *gorm.DB, column string, skipNull bool) *gorm.DB {
	q := db.
		Table("products").
		Select(fmt.Sprintf("COALESCE(MIN(%s), 0)::float8 AS min, COALESCE(MAX(%s), 0)::float8 AS max", column, column)).
		Where("products.id IN (?)", naked())
	if skipNull {
		q = q.Where(column + " IS NOT NULL")
	}
	return q
}

func numericRange(ctx context.Context, db *gorm.DB, naked func() *gorm.DB, column string, skipNull bool) (models.NumericRange, error) {
	var nr models.NumericRange
	err := numericRangeQuery(db, naked, column, skipNull).WithContext(ctx).Scan(&nr).Error
	return nr, err
}

package catalog

import (
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"gorm.io/gorm"
)

// QueryMode selects the relation-hint set for a query.
type QueryMode int

const (
	// ModeList loads only what a list card needs: the cover image.
	ModeList QueryMode = iota
	// ModeDetail loads the full ordered gallery plus taxonomy relations.
	ModeDetail
)

// Assemble is the single entry point that turns a filter state into one
// fully-predicated query scoped to active products. The result is unsorted
// and unpaginated; callers apply ApplySort and Paginate on top.
//
// Pagination/sort/meta keys never reach ApplyFilters: FilterState is built
// by the boundary layer with those keys already stripped, so they cannot be
// mistaken for taxonomy-group lookups.
func Assemble(db *gorm.DB, f models.FilterState, mode QueryMode) *gorm.DB {
	q := db.Model(&models.Product{}).Where("products.active = ?", true)

	switch mode {
	case ModeDetail:
		q = q.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.position ASC")
		}).
			Preload("ProductType").
			Preload("Categories", "product_categories.active = ?", true).
			Preload("Terms", "terms.active = ?", true).
			Preload("Terms.Group")
	default:
		// the cover is the lowest gallery position, which is not always 0
		q = q.Preload("Images",
			"product_images.position = (SELECT MIN(i.position) FROM product_images i WHERE i.product_id = product_images.product_id)").
			Preload("ProductType")
	}

	q = ApplyFilters(db, q, f)
	q = ApplyKeyword(q, f.Query)
	return q
}

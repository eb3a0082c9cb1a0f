package catalog

import (
	"context"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"gorm.io/gorm"
)

const (
	DefaultPerPage = 24
	MaxPerPage     = 100
)

// Paginate executes the sorted query with page/per_page semantics and
// returns the rows plus the full pagination meta block.
//
// Overflow rule: a requested page beyond the last page of a non-empty
// result set re-executes as page 1 instead of returning an empty page:
// a stale page number in a client's UI (e.g. after a filter change shrank
// the set) should not look like "no results". A truly empty set returns
// an empty page as-is.
func Paginate(ctx context.Context, q *gorm.DB, perPage, page int) ([]models.Product, models.Pagination, error) {
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	q = q.WithContext(ctx).Session(&gorm.Session{})

	// multi-valued taxonomy joins can duplicate rows, so the id space is
	// always counted and fetched distinct
	var total int64
	if err := q.Distinct("products.id").Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	page = ResolvePage(int(total), perPage, page)
	offset := (page - 1) * perPage

	rows := make([]models.Product, 0)
	if total > 0 {
		if err := q.Distinct("products.*").Limit(perPage).Offset(offset).Find(&rows).Error; err != nil {
			return nil, models.Pagination{}, err
		}
	}

	meta := buildMeta(int(total), perPage, page, len(rows))
	return rows, meta, nil
}

// ResolvePage applies the overflow-recovery rule.
func ResolvePage(total, perPage, requested int) int {
	if requested < 1 {
		return 1
	}
	if total > 0 && requested > LastPage(total, perPage) {
		return 1
	}
	return requested
}

// LastPage is the highest valid page number (1 when the set is empty).
func LastPage(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	last := (total + perPage - 1) / perPage
	if last < 1 {
		last = 1
	}
	return last
}

// PageFromCursor converts a cursor offset back into a page number. Cursor
// mode is a thin re-expression of page mode, not a keyset cursor.
func PageFromCursor(cursor, perPage int) int {
	if perPage < 1 || cursor < 0 {
		return 1
	}
	return cursor/perPage + 1
}

// ClampCursor keeps a derived cursor inside [0, total-returned].
func ClampCursor(cursor, total, returned int) int {
	if cursor < 0 {
		return 0
	}
	if max := total - returned; cursor > max {
		if max < 0 {
			return 0
		}
		return max
	}
	return cursor
}

func buildMeta(total, perPage, page, returned int) models.Pagination {
	last := LastPage(total, perPage)
	cursor := ClampCursor((page-1)*perPage, total, returned)

	meta := models.Pagination{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: last,
		HasMore:  page < last,
		Cursor:   cursor,
	}

	if meta.HasMore {
		next := cursor + returned
		meta.NextCursor = &next
	}
	if page > 1 {
		prev := cursor - perPage
		if prev < 0 {
			prev = 0
		}
		meta.PreviousCursor = &prev
	}

	return meta
}

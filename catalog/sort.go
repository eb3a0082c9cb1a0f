package catalog

import "gorm.io/gorm"

// DefaultSort is applied for empty or unknown sort tokens.
const DefaultSort = "-created_at"

// ResolveSort maps a sort token to a column and direction. A leading "-"
// means descending. Unknown tokens fall back to newest-first.
func ResolveSort(token string) (column, direction string) {
	switch token {
	case "price":
		return "products.price", "ASC"
	case "-price":
		return "products.price", "DESC"
	case "name":
		return "products.name", "ASC"
	case "-name":
		return "products.name", "DESC"
	case "created_at":
		return "products.created_at", "ASC"
	case "-created_at":
		return "products.created_at", "DESC"
	default:
		return "products.created_at", "DESC"
	}
}

// ApplySort orders the query by the resolved column plus an id tie-break,
// so page boundaries stay deterministic across repeated calls. Must run
// after all filters and before pagination.
func ApplySort(q *gorm.DB, token string) *gorm.DB {
	column, direction := ResolveSort(token)
	return q.Order(column + " " + direction).Order("products.id ASC")
}

package product_controller

import (
	"strconv"
	"strings"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/catalog"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Filter-state parsing
// ─────────────────────────────────────────────────────────────

// reservedKeys are pagination/sort/meta parameters. They are stripped here
// so they can never be mistaken for taxonomy-group lookups downstream.
var reservedKeys = map[string]bool{
	"q":         true,
	"sort":      true,
	"dir":       true, // legacy direction alias; direction lives in the sort token
	"page":      true,
	"per_page":  true,
	"cursor":    true,
	"price_min": true,
	"price_max": true,
}

// parseFilterState rebuilds the request-scoped filter state from the query
// string. Parsing is permissive: malformed values are dropped, never
// rejected. Filter payloads come from a semi-trusted client and a typo
// should not 400 the whole page.
//
// Any non-reserved repeatable key is treated as a taxonomy group code with
// term ids as values (e.g. ?brand=<id>&brand=<id>&origin=<id>). Numeric
// extra_attrs ranges use range[<code>][min] / range[<code>][max].
func parseFilterState(c *gin.Context) models.FilterState {
	f := models.FilterState{
		Terms:  make(map[string][]string),
		Ranges: make(map[string]models.RangeBound),
	}

	for key, vals := range c.Request.URL.Query() {
		switch {
		case key == "type":
			f.Types = splitMulti(vals)
		case key == "category":
			f.Categories = splitMulti(vals)
		case key == "q":
			f.Query = strings.TrimSpace(vals[0])
		case key == "sort":
			f.Sort = vals[0]
		case key == "price_min":
			f.PriceMin = parseInt64(vals[0])
		case key == "price_max":
			f.PriceMax = parseInt64(vals[0])
		case strings.HasPrefix(key, "range["):
			applyRangeParam(&f, key, vals[0])
		case reservedKeys[key]:
			// pagination handled below
		default:
			if ids := splitMulti(vals); len(ids) > 0 {
				f.Terms[key] = ids
			}
		}
	}

	f.Page, f.PerPage = parsePagination(c)
	if cursorStr := c.Query("cursor"); cursorStr != "" && c.Query("page") == "" {
		if cursor, err := strconv.Atoi(cursorStr); err == nil && cursor >= 0 {
			f.Cursor = &cursor
			f.Page = catalog.PageFromCursor(cursor, f.PerPage)
		}
	}

	return f
}

// applyRangeParam parses range[<code>][min] / range[<code>][max]. Invalid
// codes or non-numeric bounds are skipped silently.
func applyRangeParam(f *models.FilterState, key, raw string) {
	rest := strings.TrimPrefix(key, "range[")
	end := strings.Index(rest, "]")
	if end < 1 {
		return
	}
	code := rest[:end]
	if !catalog.ValidAttrCode(code) {
		return
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return
	}

	bound := f.Ranges[code]
	switch rest[end:] {
	case "][min]":
		bound.Min = &value
	case "][max]":
		bound.Max = &value
	default:
		return
	}
	f.Ranges[code] = bound
}

// splitMulti accepts both repeated params and comma-joined lists.
func splitMulti(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseInt64(s string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parsePagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "24"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > catalog.MaxPerPage {
		perPage = catalog.DefaultPerPage
	}

	return page, perPage
}

// ─────────────────────────────────────────────────────────────
// Cached payload shape
// ─────────────────────────────────────────────────────────────

// cachedPage is what a cached list/search response stores: the projected
// rows plus the complete meta block (aggregates included on search).
type cachedPage struct {
	Data []models.StorefrontProduct `json:"data"`
	Meta models.Pagination          `json:"meta"`
}

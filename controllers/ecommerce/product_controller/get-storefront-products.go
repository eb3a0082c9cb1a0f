package product_controller

import (
	"encoding/json"
	"log"
	"net/http"

	store_cache "github.com/Hieubkav/wincellarCloneBackend-sub000/cache"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/catalog"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Retrieve active products filtered by type, category, taxonomy terms, price range, extra-attribute ranges and keyword, with sorting and pagination. No facet aggregates (see /products/search).
// @Tags Storefront - Products
// @Produce json
// @Param type query []string false "Product type ids (repeatable)"
// @Param category query []string false "Category ids (repeatable)"
// @Param q query string false "Search keyword"
// @Param price_min query int false "Minimum price (smallest currency unit)"
// @Param price_max query int false "Maximum price (smallest currency unit)"
// @Param sort query string false "Sort token (price, -price, name, -name, created_at, -created_at)" default(-created_at)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(24)
// @Param cursor query int false "Cursor offset (alternative to page)"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	f := parseFilterState(c)

	key := store_cache.SearchKey(f)
	if raw, ok := store_cache.Get(config.Ctx, key); ok {
		var page cachedPage
		if err := json.Unmarshal(raw, &page); err == nil {
			config.SearchCacheHits.Inc()
			c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", page.Data, &page.Meta))
			return
		}
	}
	config.SearchCacheMisses.Inc()

	page, err := runProductQuery(f, nil)
	if err != nil {
		log.Printf("ERROR fetching storefront products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	if payload, err := json.Marshal(page); err == nil {
		store_cache.Put(config.Ctx, key, payload, store_cache.SearchTTL(f), store_cache.SearchTags(f))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", page.Data, &page.Meta))
}

// runProductQuery executes the filters → sort → paginate pipeline and
// projects the rows. When facets is non-nil it is attached to the meta
// block (faceted-search entry point only).
func runProductQuery(f models.FilterState, facets *models.FacetResult) (*cachedPage, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm
	q := catalog.Assemble(db, f, catalog.ModeList)
	q = catalog.ApplySort(q, f.Sort)

	rows, meta, err := catalog.Paginate(ctx, q, f.PerPage, f.Page)
	if err != nil {
		return nil, err
	}

	meta.Sort = f.Sort
	if meta.Sort == "" {
		meta.Sort = catalog.DefaultSort
	}
	meta.Query = f.Query
	meta.Aggregates = facets

	items := make([]models.StorefrontProduct, 0, len(rows))
	for _, p := range rows {
		items = append(items, catalog.ToListItem(p))
	}

	return &cachedPage{Data: items, Meta: meta}, nil
}

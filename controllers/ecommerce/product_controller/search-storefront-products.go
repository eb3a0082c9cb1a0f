package product_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	store_cache "github.com/Hieubkav/wincellarCloneBackend-sub000/cache"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/catalog"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchStorefrontProducts godoc
// @Summary Faceted product search
// @Description Same filter/sort/pagination pipeline as the product list, plus facet aggregates (per-dimension counts and price/alcohol ranges) computed under the full current filter set. Facets are all-or-nothing: any aggregation failure fails the whole response.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search keyword"
// @Param type query []string false "Product type ids (repeatable)"
// @Param category query []string false "Category ids (repeatable)"
// @Param price_min query int false "Minimum price (smallest currency unit)"
// @Param price_max query int false "Maximum price (smallest currency unit)"
// @Param sort query string false "Sort token" default(-created_at)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(24)
// @Success 200 {object} models.ApiResponse "Search results with aggregates"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/search [get]
func SearchStorefrontProducts(c *gin.Context) {
	started := time.Now()
	f := parseFilterState(c)

	key := store_cache.SearchKey(f) + ":faceted"
	if raw, ok := store_cache.Get(config.Ctx, key); ok {
		var page cachedPage
		if err := json.Unmarshal(raw, &page); err == nil {
			config.SearchCacheHits.Inc()
			c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results", page.Data, &page.Meta))
			return
		}
	}
	config.SearchCacheMisses.Inc()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm
	rebuild := func() *gorm.DB {
		return catalog.Assemble(db, f, catalog.ModeList)
	}

	facetStart := time.Now()
	facets, err := catalog.AggregateFacets(ctx, db, rebuild)
	if err != nil {
		// partial facets are worse than none: a missing dimension would
		// read as "zero matches" on the client
		log.Printf("ERROR aggregating facets: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute search aggregates"))
		return
	}
	config.FacetDuration.Observe(time.Since(facetStart).Seconds())

	page, err := runProductQuery(f, facets)
	if err != nil {
		log.Printf("ERROR searching storefront products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	if payload, err := json.Marshal(page); err == nil {
		store_cache.Put(config.Ctx, key, payload, store_cache.SearchTTL(f), store_cache.SearchTags(f))
	}

	config.SearchDuration.Observe(time.Since(started).Seconds())
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results", page.Data, &page.Meta))
}

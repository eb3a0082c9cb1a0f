package cache_controller

import (
	"log"
	"net/http"

	store_cache "github.com/Hieubkav/wincellarCloneBackend-sub000/cache"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
)

// Write-side invalidation endpoints. Catalog edit flows call these after a
// mutation so only the caches referencing the edited entity are dropped.

// FlushSearchCache godoc
// @Summary Flush all search caches
// @Description Drop every cached storefront search page and the filter-metadata cache. Call after bulk catalog edits.
// @Tags CMS - Cache
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cache flushed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/cache/flush [post]
func FlushSearchCache(c *gin.Context) {
	if err := store_cache.FlushAll(config.Ctx); err != nil {
		log.Printf("ERROR flushing search cache: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to flush cache"))
		return
	}
	store_cache.InvalidateFilterMetadata()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search cache flushed", nil))
}

// FlushTypeCache godoc
// @Summary Flush caches referencing a product type
// @Tags CMS - Cache
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product type id"
// @Success 200 {object} models.ApiResponse "Cache flushed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/cache/flush/type/{id} [post]
func FlushTypeCache(c *gin.Context) {
	id := c.Param("id")
	if err := store_cache.InvalidateType(config.Ctx, id); err != nil {
		log.Printf("ERROR flushing type cache %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to flush cache"))
		return
	}
	store_cache.InvalidateFilterMetadata()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Type cache flushed", nil))
}

// FlushCategoryCache godoc
// @Summary Flush caches referencing a category
// @Tags CMS - Cache
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category id"
// @Success 200 {object} models.ApiResponse "Cache flushed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/cache/flush/category/{id} [post]
func FlushCategoryCache(c *gin.Context) {
	id := c.Param("id")
	if err := store_cache.InvalidateCategory(config.Ctx, id); err != nil {
		log.Printf("ERROR flushing category cache %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to flush cache"))
		return
	}
	store_cache.InvalidateFilterMetadata()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category cache flushed", nil))
}

// FlushTermCache godoc
// @Summary Flush caches referencing a taxonomy term
// @Tags CMS - Cache
// @Produce json
// @Security BearerAuth
// @Param group path string true "Attribute group code"
// @Param id path string true "Term id"
// @Success 200 {object} models.ApiResponse "Cache flushed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/cache/flush/term/{group}/{id} [post]
func FlushTermCache(c *gin.Context) {
	group := c.Param("group")
	id := c.Param("id")
	if err := store_cache.InvalidateTerm(config.Ctx, group, id); err != nil {
		log.Printf("ERROR flushing term cache %s:%s: %v", group, id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to flush cache"))
		return
	}
	store_cache.InvalidateFilterMetadata()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Term cache flushed", nil))
}

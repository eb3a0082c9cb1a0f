package ecommerce_routes

import (
	store_category "github.com/Hieubkav/wincellarCloneBackend-sub000/controllers/ecommerce/category_controller"
	store_filter "github.com/Hieubkav/wincellarCloneBackend-sub000/controllers/ecommerce/filter_controller"
	store_product "github.com/Hieubkav/wincellarCloneBackend-sub000/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)                  // List with filters
		products.GET("/search", store_product.SearchStorefrontProducts)        // Faceted search
		products.GET("/suggestions", store_product.GetProductSuggestions)      // Search-as-you-type
		products.GET("/:slug", store_product.GetStorefrontProductBySlug)       // Single product
	}

	// Category routes
	store.GET("/categories", store_category.GetCategories)

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}

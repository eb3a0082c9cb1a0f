package cms_routes

import (
	cache_controller "github.com/Hieubkav/wincellarCloneBackend-sub000/controllers/cms/cache_controller"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCacheRoutes(router *gin.RouterGroup) {
	// Cache invalidation (admin only) — called by catalog edit flows
	cache := router.Group("/cache")
	cache.Use(middleware.AdminAuth())
	{
		cache.POST("/flush", cache_controller.FlushSearchCache)
		cache.POST("/flush/type/:id", cache_controller.FlushTypeCache)
		cache.POST("/flush/category/:id", cache_controller.FlushCategoryCache)
		cache.POST("/flush/term/:group/:id", cache_controller.FlushTermCache)
	}
}

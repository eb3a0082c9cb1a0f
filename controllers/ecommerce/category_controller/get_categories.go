package category_controller

import (
	"net/http"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List storefront categories
// @Description Get all active product categories with their active-product counts, in display order. Used for storefront navigation.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name AS name,
			c.slug AS slug,
			COUNT(DISTINCT p.id)::int AS count
		FROM product_categories c
		LEFT JOIN product_category_assignments pca ON pca.product_category_id = c.id
		LEFT JOIN products p ON p.id = pca.product_id AND p.active = true
		WHERE c.active = true
		GROUP BY c.id, c.name, c.slug, c.position
		ORDER BY c.position ASC, c.name ASC
	`

	categories := make([]models.FacetOption, 0)
	if err := config.Gorm.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}

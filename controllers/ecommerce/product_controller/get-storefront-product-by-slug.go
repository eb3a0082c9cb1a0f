package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/catalog"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const relatedLimit = 8

// GetStorefrontProductBySlug godoc
// @Summary Get a single storefront product
// @Description Retrieve one active product by slug with full gallery, grouped attributes, breadcrumbs and related products of the same type.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm

	var product models.Product
	err := catalog.Assemble(db, models.FilterState{}, catalog.ModeDetail).
		WithContext(ctx).
		Where("products.slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("ERROR fetching product %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// Related section: newest products of the same type, excluding this one.
	related := make([]models.Product, 0, relatedLimit)
	err = catalog.Assemble(db, models.FilterState{}, catalog.ModeList).
		WithContext(ctx).
		Where("products.product_type_id = ?", product.ProductTypeID).
		Where("products.id <> ?", product.ID).
		Order("products.created_at DESC").
		Limit(relatedLimit).
		Find(&related).Error
	if err != nil {
		// the detail page is still useful without its related strip
		log.Printf("WARN fetching related products for %q: %v", slug, err)
		related = nil
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", catalog.ToDetail(product, related)))
}

package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/catalog"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
)

const suggestionLimit = 8

// GetProductSuggestions godoc
// @Summary Search-as-you-type suggestions
// @Description Return up to 8 minimal product cards matching the keyword. Runs a thin pgx query (no ORM hydration) since this endpoint fires on every keystroke.
// @Tags Storefront - Products
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {object} models.ApiResponse "Suggestions fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/suggestions [get]
func GetProductSuggestions(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", []models.ProductSuggestion{}))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	pattern := "%" + catalog.EscapeLike(term) + "%"

	query := `
		SELECT
			p.id::text AS id,
			p.name,
			p.slug,
			p.price,
			COALESCE(img.url, '') AS image
		FROM products p
		LEFT JOIN LATERAL (
			SELECT url FROM product_images
			WHERE product_id = p.id
			ORDER BY position ASC
			LIMIT 1
		) img ON true
		WHERE p.active
		  AND (
			to_tsvector('simple', p.name || ' ' || p.description) @@ plainto_tsquery('simple', $1)
			OR p.name ILIKE $2
			OR p.slug ILIKE $2
		  )
		ORDER BY p.name ASC
		LIMIT $3
	`

	rows, err := config.DB.Query(ctx, query, term, pattern, suggestionLimit)
	if err != nil {
		log.Printf("ERROR fetching suggestions for %q: %v", term, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}
	defer rows.Close()

	suggestions := make([]models.ProductSuggestion, 0, suggestionLimit)
	for rows.Next() {
		var s models.ProductSuggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Price, &s.Image); err != nil {
			log.Printf("ERROR scanning suggestion row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
			return
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		log.Printf("ERROR iterating suggestion rows: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", suggestions))
}

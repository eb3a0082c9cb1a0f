package filter_controller

import (
	"net/http"
	"sync"

	store_cache "github.com/Hieubkav/wincellarCloneBackend-sub000/cache"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns attribute groups with their terms, product types, categories, and the global price/alcohol ranges for the storefront filter sidebar.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := store_cache.GetFilterMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	db := config.Gorm

	// Run the independent metadata queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	collect := func(fn func(db *gorm.DB) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fn(db)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
		}()
	}

	collect(func(db *gorm.DB) error {
		groups, err := getFilterGroups(db)
		if err == nil {
			metadata.Groups = groups
		}
		return err
	})

	collect(func(db *gorm.DB) error {
		types, err := getTypeOptions(db)
		if err == nil {
			metadata.Types = types
		}
		return err
	})

	collect(func(db *gorm.DB) error {
		categories, err := getCategoryOptions(db)
		if err == nil {
			metadata.Categories = categories
		}
		return err
	})

	collect(func(db *gorm.DB) error {
		priceRange, err := getPriceRange(db)
		if err == nil {
			metadata.PriceRange = priceRange
		}
		return err
	})

	collect(func(db *gorm.DB) error {
		alcRange, err := getAlcoholRange(db)
		if err == nil {
			metadata.AlcRange = alcRange
		}
		return err
	})

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	store_cache.SetFilterMetadata(metadata)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// getFilterGroups fetches visible attribute groups with their active terms
// and per-term active-product counts, in display order.
func getFilterGroups(db *gorm.DB) ([]models.FilterGroupData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			g.code AS group_code,
			g.name AS group_name,
			g.filter_mode AS filter_mode,
			t.id::text AS id,
			t.name AS name,
			t.slug AS slug,
			COUNT(DISTINCT p.id)::int AS count
		FROM attribute_groups g
		JOIN terms t ON t.group_id = g.id AND t.active = true
		LEFT JOIN product_term_assignments pta ON pta.term_id = t.id
		LEFT JOIN products p ON p.id = pta.product_id AND p.active = true
		WHERE g.active = true AND g.visible = true
		GROUP BY g.code, g.name, g.filter_mode, g.position, t.id, t.name, t.slug, t.position
		ORDER BY g.position ASC, t.position ASC, t.name ASC
	`

	var rows []struct {
		GroupCode  string `gorm:"column:group_code"`
		GroupName  string `gorm:"column:group_name"`
		FilterMode string `gorm:"column:filter_mode"`
		ID         string `gorm:"column:id"`
		Name       string `gorm:"column:name"`
		Slug       string `gorm:"column:slug"`
		Count      int    `gorm:"column:count"`
	}

	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	groups := make([]models.FilterGroupData, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.GroupCode]
		if !ok {
			groups = append(groups, models.FilterGroupData{
				Code:       row.GroupCode,
				Name:       row.GroupName,
				FilterMode: row.FilterMode,
				Terms:      []models.FacetOption{},
			})
			i = len(groups) - 1
			index[row.GroupCode] = i
		}
		groups[i].Terms = append(groups[i].Terms, models.FacetOption{
			ID:    row.ID,
			Name:  row.Name,
			Slug:  row.Slug,
			Count: row.Count,
		})
	}

	return groups, nil
}

func getTypeOptions(db *gorm.DB) ([]models.FacetOption, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			pt.id::text AS id,
			pt.name AS name,
			pt.slug AS slug,
			COUNT(p.id)::int AS count
		FROM product_types pt
		LEFT JOIN products p ON p.product_type_id = pt.id AND p.active = true
		WHERE pt.active = true
		GROUP BY pt.id, pt.name, pt.slug, pt.position
		ORDER BY pt.position ASC, pt.name ASC
	`

	opts := make([]models.FacetOption, 0)
	err := db.WithContext(ctx).Raw(query).Scan(&opts).Error
	return opts, err
}

func getCategoryOptions(db *gorm.DB) ([]models.FacetOption, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name AS name,
			c.slug AS slug,
			COUNT(DISTINCT pca.product_id)::int AS count
		FROM product_categories c
		LEFT JOIN product_category_assignments pca ON pca.product_category_id = c.id
		WHERE c.active = true
		GROUP BY c.id, c.name, c.slug, c.position
		ORDER BY c.position ASC, c.name ASC
	`

	opts := make([]models.FacetOption, 0)
	err := db.WithContext(ctx).Raw(query).Scan(&opts).Error
	return opts, err
}

// getPriceRange fetches the global price bounds. Contact-for-price rows
// (price <= 0) are excluded so the sentinel never skews the slider.
func getPriceRange(db *gorm.DB) (models.NumericRange, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(price), 0)::float8 AS min,
			COALESCE(MAX(price), 0)::float8 AS max
		FROM products
		WHERE active = true
			AND price > 0
	`

	var nr models.NumericRange
	err := db.WithContext(ctx).Raw(query).Scan(&nr).Error
	return nr, err
}

func getAlcoholRange(db *gorm.DB) (models.NumericRange, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(alcohol_percent), 0)::float8 AS min,
			COALESCE(MAX(alcohol_percent), 0)::float8 AS max
		FROM products
		WHERE active = true
			AND alcohol_percent IS NOT NULL
	`

	var nr models.NumericRange
	err := db.WithContext(ctx).Raw(query).Scan(&nr).Error
	return nr, err
}

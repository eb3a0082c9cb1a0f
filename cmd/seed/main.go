package main

import (
	"fmt"
	"log"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and loads a demo wine catalog for local
// development.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("WINCELLAR - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	db := config.Gorm

	if err := db.SetupJoinTable(&models.Product{}, "Terms", &models.ProductTermAssignment{}); err != nil {
		log.Fatalf("Failed to set up term join table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.ProductType{},
		&models.ProductCategory{},
		&models.AttributeGroup{},
		&models.Term{},
		&models.Product{},
		&models.ProductImage{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	types := seedTypes(db)
	categories := seedCategories(db)
	terms := seedTaxonomy(db)
	count := seedProducts(db, types, categories, terms)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Types:      %d\n", len(types))
	fmt.Printf("Categories: %d\n", len(categories))
	fmt.Printf("Products:   %d\n", count)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/products/search?sort=-price")
	fmt.Println()
}

func seedTypes(db *gorm.DB) map[string]models.ProductType {
	names := []struct{ name, slug string }{
		{"Red wine", "red-wine"},
		{"White wine", "white-wine"},
		{"Sparkling", "sparkling"},
		{"Whisky", "whisky"},
	}

	out := make(map[string]models.ProductType, len(names))
	for i, n := range names {
		t := models.ProductType{Name: n.name, Slug: n.slug, Active: true, Position: i}
		if err := db.Where(models.ProductType{Slug: n.slug}).FirstOrCreate(&t).Error; err != nil {
			log.Fatalf("Failed to seed product type %q: %v", n.name, err)
		}
		out[n.slug] = t
	}
	log.Println("✓ Product types seeded")
	return out
}

func seedCategories(db *gorm.DB) map[string]models.ProductCategory {
	names := []struct{ name, slug string }{
		{"Gift sets", "gift-sets"},
		{"Best sellers", "best-sellers"},
		{"Under 500k", "under-500k"},
	}

	out := make(map[string]models.ProductCategory, len(names))
	for i, n := range names {
		c := models.ProductCategory{Name: n.name, Slug: n.slug, Active: true, Position: i}
		if err := db.Where(models.ProductCategory{Slug: n.slug}).FirstOrCreate(&c).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", n.name, err)
		}
		out[n.slug] = c
	}
	log.Println("✓ Categories seeded")
	return out
}

// seedTaxonomy creates the brand/grape/origin groups with their terms and
// returns the terms keyed "<group>/<slug>".
func seedTaxonomy(db *gorm.DB) map[string]models.Term {
	groups := []struct {
		code, name string
		mode       string
		terms      []struct{ name, slug string }
	}{
		{"brand", "Brand", models.FilterModeMulti, []struct{ name, slug string }{
			{"Penfolds", "penfolds"},
			{"Torres", "torres"},
			{"Concha y Toro", "concha-y-toro"},
			{"Glenfiddich", "glenfiddich"},
		}},
		{"grape", "Grape variety", models.FilterModeMulti, []struct{ name, slug string }{
			{"Cabernet Sauvignon", "cabernet-sauvignon"},
			{"Merlot", "merlot"},
			{"Chardonnay", "chardonnay"},
			{"Syrah", "syrah"},
		}},
		{"origin", "Origin", models.FilterModeSingle, []struct{ name, slug string }{
			{"France", "france"},
			{"Chile", "chile"},
			{"Australia", "australia"},
			{"Scotland", "scotland"},
		}},
	}

	out := make(map[string]models.Term)
	for gi, g := range groups {
		group := models.AttributeGroup{
			Code:       g.code,
			Name:       g.name,
			FilterMode: g.mode,
			Position:   gi,
			Visible:    true,
			Active:     true,
		}
		if err := db.Where(models.AttributeGroup{Code: g.code}).FirstOrCreate(&group).Error; err != nil {
			log.Fatalf("Failed to seed attribute group %q: %v", g.code, err)
		}

		for ti, t := range g.terms {
			term := models.Term{GroupID: group.ID, Name: t.name, Slug: t.slug, Active: true, Position: ti}
			if err := db.Where(models.Term{GroupID: group.ID, Slug: t.slug}).FirstOrCreate(&term).Error; err != nil {
				log.Fatalf("Failed to seed term %q: %v", t.name, err)
			}
			out[g.code+"/"+t.slug] = term
		}
	}
	log.Println("✓ Taxonomy seeded")
	return out
}

func seedProducts(
	db *gorm.DB,
	types map[string]models.ProductType,
	categories map[string]models.ProductCategory,
	terms map[string]models.Term,
) int {
	alc := func(v float64) *float64 { return &v }

	products := []struct {
		product    models.Product
		typeSlug   string
		catSlugs   []string
		termKeys   []string
		imageURLs  []string
	}{
		{
			product: models.Product{
				Name:           "Penfolds Bin 389 Cabernet Shiraz",
				Slug:           "penfolds-bin-389-cabernet-shiraz",
				Description:    "A rich Australian blend aged in American oak, dark fruit and chocolate on the palate.",
				Price:          2390000,
				OriginalPrice:  2690000,
				AlcoholPercent: alc(14.5),
				VolumeML:       750,
				Badges:         datatypes.NewJSONSlice([]string{"hot", "limited"}),
				ExtraAttrs: models.ExtraAttrMap{
					"vintage":         {Label: "Vintage", Value: "2019", Type: "number"},
					"sweetness_level": {Label: "Sweetness", Value: "2", Type: "number"},
				},
				Active: true,
			},
			typeSlug:  "red-wine",
			catSlugs:  []string{"best-sellers", "gift-sets"},
			termKeys:  []string{"brand/penfolds", "grape/cabernet-sauvignon", "grape/syrah", "origin/australia"},
			imageURLs: []string{"/images/penfolds-bin-389-1.jpg", "/images/penfolds-bin-389-2.jpg"},
		},
		{
			product: models.Product{
				Name:           "Torres Sangre de Toro Original",
				Slug:           "torres-sangre-de-toro-original",
				Description:    "Classic Spanish red, smooth and spicy with ripe cherry notes.",
				Price:          420000,
				OriginalPrice:  420000,
				AlcoholPercent: alc(13.5),
				VolumeML:       750,
				Badges:         datatypes.NewJSONSlice([]string{"new"}),
				ExtraAttrs: models.ExtraAttrMap{
					"sweetness_level": {Label: "Sweetness", Value: "3", Type: "number"},
				},
				Active: true,
			},
			typeSlug:  "red-wine",
			catSlugs:  []string{"under-500k"},
			termKeys:  []string{"brand/torres", "grape/merlot", "origin/france"},
			imageURLs: []string{"/images/sangre-de-toro-1.jpg"},
		},
		{
			product: models.Product{
				Name:           "Casillero del Diablo Chardonnay",
				Slug:           "casillero-del-diablo-chardonnay",
				Description:    "Fresh Chilean white with tropical fruit and a touch of vanilla.",
				Price:          350000,
				OriginalPrice:  460000,
				AlcoholPercent: alc(12.5),
				VolumeML:       750,
				Badges:         datatypes.NewJSONSlice([]string{}),
				ExtraAttrs: models.ExtraAttrMap{
					"sweetness_level": {Label: "Sweetness", Value: "5", Type: "number"},
				},
				Active: true,
			},
			typeSlug:  "white-wine",
			catSlugs:  []string{"under-500k", "best-sellers"},
			termKeys:  []string{"brand/concha-y-toro", "grape/chardonnay", "origin/chile"},
			imageURLs: []string{"/images/casillero-chardonnay-1.jpg"},
		},
		{
			product: models.Product{
				Name:           "Glenfiddich 18 Year Old",
				Slug:           "glenfiddich-18-year-old",
				Description:    "Single malt matured in Oloroso sherry and bourbon casks. Price on request for gift engraving.",
				Price:          0,
				OriginalPrice:  0,
				AlcoholPercent: alc(40),
				VolumeML:       700,
				Badges:         datatypes.NewJSONSlice([]string{"premium"}),
				ExtraAttrs: models.ExtraAttrMap{
					"age": {Label: "Age", Value: "18", Type: "number"},
				},
				Active: true,
			},
			typeSlug:  "whisky",
			catSlugs:  []string{"gift-sets"},
			termKeys:  []string{"brand/glenfiddich", "origin/scotland"},
			imageURLs: []string{"/images/glenfiddich-18-1.jpg", "/images/glenfiddich-18-2.jpg"},
		},
	}

	seeded := 0
	for _, entry := range products {
		p := entry.product
		p.ProductTypeID = types[entry.typeSlug].ID

		var existing models.Product
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			continue // already seeded
		}

		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}

		for _, slug := range entry.catSlugs {
			cat := categories[slug]
			if err := db.Model(&p).Association("Categories").Append(&cat); err != nil {
				log.Fatalf("Failed to assign category %q: %v", slug, err)
			}
		}

		for pos, key := range entry.termKeys {
			term, ok := terms[key]
			if !ok {
				log.Fatalf("Unknown term key %q", key)
			}
			assignment := models.ProductTermAssignment{ProductID: p.ID, TermID: term.ID, Position: pos}
			if err := db.Create(&assignment).Error; err != nil {
				log.Fatalf("Failed to assign term %q: %v", key, err)
			}
		}

		for pos, url := range entry.imageURLs {
			img := models.ProductImage{ID: uuid.Must(uuid.NewV7()), ProductID: p.ID, URL: url, Position: pos}
			if err := db.Create(&img).Error; err != nil {
				log.Fatalf("Failed to seed image %q: %v", url, err)
			}
		}

		seeded++
	}

	log.Printf("✓ Products seeded (%d new)", seeded)
	return seeded
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ExtraAttr is one entry of the free-form attribute bag stored on a product,
// keyed by attribute-group code (e.g. "sweetness_level", "vintage").
type ExtraAttr struct {
	Label string `json:"label" example:"Sweetness"`
	Value string `json:"value" example:"12.5"`
	Type  string `json:"type" example:"number"`
}

// ExtraAttrMap maps attribute-group code → ExtraAttr.
type ExtraAttrMap map[string]ExtraAttr

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string                      `json:"name" gorm:"not null;index"`
	Slug           string                      `json:"slug" gorm:"not null;uniqueIndex"`
	Description    string                      `json:"description" gorm:"type:text;not null"`
	Price          int64                       `json:"price" gorm:"type:bigint;not null;index"` // smallest currency unit; <= 0 means "contact for price"
	OriginalPrice  int64                       `json:"original_price" gorm:"type:bigint;not null;default:0"`
	AlcoholPercent *float64                    `json:"alcohol_percent,omitempty" gorm:"type:numeric(5,2)"`
	VolumeML       int                         `json:"volume_ml" gorm:"default:0"`
	Badges         datatypes.JSONSlice[string] `json:"badges" gorm:"type:jsonb;not null;default:'[]'"`
	ExtraAttrs     ExtraAttrMap                `json:"extra_attrs" gorm:"type:jsonb;not null;default:'{}'"`
	Active         bool                        `json:"active" gorm:"not null;default:true;index"`
	ProductTypeID  uuid.UUID                   `json:"product_type_id" gorm:"type:uuid;not null;index"`
	ProductType    *ProductType                `json:"product_type,omitempty" gorm:"foreignKey:ProductTypeID;references:ID"`
	Categories     []ProductCategory           `json:"categories,omitempty" gorm:"many2many:product_category_assignments"`
	Terms          []Term                      `json:"terms,omitempty" gorm:"many2many:product_term_assignments"`
	Images         []ProductImage              `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt      time.Time                   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CoverImage returns the gallery image at the lowest position, if any.
func (p *Product) CoverImage() *ProductImage {
	var cover *ProductImage
	for i := range p.Images {
		if cover == nil || p.Images[i].Position < cover.Position {
			cover = &p.Images[i]
		}
	}
	return cover
}

// ═══════════════════════════════════════════════════════════
// Product Images (ordered gallery)
// ═══════════════════════════════════════════════════════════

// ProductImage is one entry of the ordered product gallery.
// Position 0 is the cover image used on list cards.
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// ExtraAttrMap methods
func (m *ExtraAttrMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(ExtraAttrMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ExtraAttrMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m ExtraAttrMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]ExtraAttr{})
	}
	return json.Marshal(m)
}

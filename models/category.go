package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType is a fixed (non-EAV) dimension. Every product belongs to
// exactly one type (e.g. "Red wine", "Whisky").
type ProductType struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *ProductType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductType) TableName() string {
	return "product_types"
}

// ProductCategory is a fixed dimension with a many-to-many product
// relationship (a bottle can sit in "Gift sets" and "Under 500k" at once).
type ProductCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *ProductCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

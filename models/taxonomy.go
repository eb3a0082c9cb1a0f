package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter modes for attribute groups.
const (
	FilterModeSingle = "single" // one term at a time (e.g. origin)
	FilterModeMulti  = "multi"  // any number of terms (e.g. brand, grape)
	FilterModeEntry  = "entry"  // free text / numeric entry against extra_attrs
)

// AttributeGroup is one taxonomy dimension (brand, grape, origin, ...).
// The code is the stable identifier used in filter payloads and cache keys.
type AttributeGroup struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code       string    `json:"code" gorm:"not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"not null"`
	FilterMode string    `json:"filter_mode" gorm:"type:varchar(20);not null;default:'multi';check:filter_mode IN ('single', 'multi', 'entry')"`
	Position   int       `json:"position" gorm:"not null;default:0"`
	Visible    bool      `json:"visible" gorm:"not null;default:true"`
	Active     bool      `json:"active" gorm:"not null;default:true;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Terms []Term `json:"terms,omitempty" gorm:"foreignKey:GroupID"`
}

func (g *AttributeGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (AttributeGroup) TableName() string {
	return "attribute_groups"
}

// Term is a concrete value within an AttributeGroup (a brand, an origin, a grape).
// Slug is unique within its group, not globally.
type Term struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_terms_group_slug"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex:idx_terms_group_slug"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Group *AttributeGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;references:ID"`
}

func (t *Term) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Term) TableName() string {
	return "terms"
}

// ProductTermAssignment is the product↔term join row. It carries a display
// position so term chips render in a stable order on the detail page.
type ProductTermAssignment struct {
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;primaryKey"`
	TermID    uuid.UUID `json:"term_id" gorm:"type:uuid;primaryKey;index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
}

func (ProductTermAssignment) TableName() string {
	return "product_term_assignments"
}

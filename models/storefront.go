// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (customer-facing view shapes)
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import "time"

// StorefrontProduct is the list-card view of a product.
type StorefrontProduct struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Price           int64     `json:"price"`
	OriginalPrice   int64     `json:"original_price,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	ContactForPrice bool      `json:"contact_for_price,omitempty"`
	AlcoholPercent  *float64  `json:"alcohol_percent,omitempty"`
	VolumeML        int       `json:"volume_ml,omitempty"`
	Badges          []string  `json:"badges,omitempty"`
	Image           string    `json:"image,omitempty"`
	TypeName        string    `json:"type_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// StorefrontProductDetail is the detail-page view: the list card plus full
// description, gallery, grouped attributes, breadcrumbs and related sections.
type StorefrontProductDetail struct {
	StorefrontProduct
	Description     string              `json:"description"`
	Images          []string            `json:"images"`
	AttributeGroups []DetailAttribute   `json:"attribute_groups"`
	Breadcrumbs     []Breadcrumb        `json:"breadcrumbs"`
	Related         []StorefrontProduct `json:"related,omitempty"`
}

// DetailAttribute is one attribute row on the detail page: either the
// terms of a taxonomy group or a free-form extra_attrs entry.
type DetailAttribute struct {
	Code   string   `json:"code"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Breadcrumb is one node of the detail-page breadcrumb trail.
type Breadcrumb struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductSuggestion is the minimal card returned by the suggestion endpoint.
type ProductSuggestion struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Facets
// ═══════════════════════════════════════════════════════════

// FacetOption is one countable option of a facet dimension.
type FacetOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// FacetResult carries per-dimension counts plus global numeric ranges,
// all computed under the full current filter set (narrowing model).
type FacetResult struct {
	Categories []FacetOption `json:"categories"`
	Types      []FacetOption `json:"types"`
	Brands     []FacetOption `json:"brands"`
	Grapes     []FacetOption `json:"grapes"`
	Origins    []FacetOption `json:"origins"`
	PriceRange NumericRange  `json:"price_range"`
	AlcRange   NumericRange  `json:"alcohol_range"`
}

// NumericRange is a min/max pair over the filtered result set.
type NumericRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (the unfiltered option space)
// ═══════════════════════════════════════════════════════════

// FilterMetadata is everything the storefront needs to render its
// filter sidebar before any filter is applied.
type FilterMetadata struct {
	Groups     []FilterGroupData `json:"groups"`
	Types      []FacetOption     `json:"types"`
	Categories []FacetOption     `json:"categories"`
	PriceRange NumericRange      `json:"price_range"`
	AlcRange   NumericRange      `json:"alcohol_range"`
}

// FilterGroupData is one attribute group with its selectable terms.
type FilterGroupData struct {
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	FilterMode string        `json:"filter_mode"`
	Terms      []FacetOption `json:"terms"`
}

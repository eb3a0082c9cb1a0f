package catalog

import (
	"sort"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
)

// ToListItem shapes a product row into the list-card view.
func ToListItem(p models.Product) models.StorefrontProduct {
	item := models.StorefrontProduct{
		ID:              p.ID.String(),
		Name:            p.Name,
		Slug:            p.Slug,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: DiscountPercent(p.Price, p.OriginalPrice),
		ContactForPrice: ContactForPrice(p.Price),
		AlcoholPercent:  p.AlcoholPercent,
		VolumeML:        p.VolumeML,
		Badges:          []string(p.Badges),
		CreatedAt:       p.CreatedAt,
	}
	if cover := p.CoverImage(); cover != nil {
		item.Image = cover.URL
	}
	if p.ProductType != nil {
		item.TypeName = p.ProductType.Name
	}
	return item
}

// ToSuggestion shapes a product row into the minimal suggestion card.
func ToSuggestion(p models.Product) models.ProductSuggestion {
	s := models.ProductSuggestion{
		ID:    p.ID.String(),
		Name:  p.Name,
		Slug:  p.Slug,
		Price: p.Price,
	}
	if cover := p.CoverImage(); cover != nil {
		s.Image = cover.URL
	}
	return s
}

// ToDetail shapes a product row (with detail-mode relations resolved) into
// the detail-page view: full gallery, grouped attributes, breadcrumbs and
// related sections.
func ToDetail(p models.Product, related []models.Product) models.StorefrontProductDetail {
	detail := models.StorefrontProductDetail{
		StorefrontProduct: ToListItem(p),
		Description:       p.Description,
		Images:            galleryURLs(p.Images),
		AttributeGroups:   attributeGroups(p),
		Breadcrumbs:       breadcrumbs(p),
	}
	for _, r := range related {
		detail.Related = append(detail.Related, ToListItem(r))
	}
	return detail
}

func galleryURLs(images []models.ProductImage) []string {
	sorted := make([]models.ProductImage, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	urls := make([]string, 0, len(sorted))
	for _, img := range sorted {
		urls = append(urls, img.URL)
	}
	return urls
}

// attributeGroups merges the product's taxonomy terms (grouped by attribute
// group, in group display order) with the free-form extra_attrs entries
// (sorted by code so output stays deterministic).
func attributeGroups(p models.Product) []models.DetailAttribute {
	type agg struct {
		attr models.DetailAttribute
		pos  int
	}

	byCode := make(map[string]*agg)
	for _, t := range p.Terms {
		if t.Group == nil {
			continue
		}
		a, ok := byCode[t.Group.Code]
		if !ok {
			a = &agg{
				attr: models.DetailAttribute{Code: t.Group.Code, Label: t.Group.Name},
				pos:  t.Group.Position,
			}
			byCode[t.Group.Code] = a
		}
		a.attr.Values = append(a.attr.Values, t.Name)
	}

	grouped := make([]*agg, 0, len(byCode))
	for _, a := range byCode {
		grouped = append(grouped, a)
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		if grouped[i].pos != grouped[j].pos {
			return grouped[i].pos < grouped[j].pos
		}
		return grouped[i].attr.Code < grouped[j].attr.Code
	})

	attrs := make([]models.DetailAttribute, 0, len(grouped)+len(p.ExtraAttrs))
	for _, a := range grouped {
		attrs = append(attrs, a.attr)
	}

	extraCodes := make([]string, 0, len(p.ExtraAttrs))
	for code := range p.ExtraAttrs {
		extraCodes = append(extraCodes, code)
	}
	sort.Strings(extraCodes)
	for _, code := range extraCodes {
		extra := p.ExtraAttrs[code]
		attrs = append(attrs, models.DetailAttribute{
			Code:   code,
			Label:  extra.Label,
			Values: []string{extra.Value},
		})
	}

	return attrs
}

func breadcrumbs(p models.Product) []models.Breadcrumb {
	crumbs := []models.Breadcrumb{{Name: "Home", Slug: ""}}
	if p.ProductType != nil {
		crumbs = append(crumbs, models.Breadcrumb{Name: p.ProductType.Name, Slug: p.ProductType.Slug})
	}
	crumbs = append(crumbs, models.Breadcrumb{Name: p.Name, Slug: p.Slug})
	return crumbs
}

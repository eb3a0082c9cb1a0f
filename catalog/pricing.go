package catalog

import "math"

// DiscountPercent returns the rounded (half-up) discount percentage, or nil
// when no discount applies. A discount exists only when both prices are
// strictly positive and the current price is below the original.
func DiscountPercent(price, original int64) *int {
	if price <= 0 || original <= 0 || price >= original {
		return nil
	}
	pct := int(math.Round(float64(original-price) / float64(original) * 100))
	return &pct
}

// ContactForPrice reports whether the price sentinel means "price on
// request" rather than a literal amount. Prices are never negative; zero
// and below is the sentinel.
func ContactForPrice(price int64) bool {
	return price <= 0
}

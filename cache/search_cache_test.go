package store_cache

import (
	"testing"
	"time"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Key idempotence: equal filter states (up to id-list ordering) collide
// ============================================================================

func TestSearchKey_OrderOfIDsDoesNotMatter(t *testing.T) {
	t1, t2 := uuid.NewString(), uuid.NewString()
	c1, c2, c3 := uuid.NewString(), uuid.NewString(), uuid.NewString()
	b1, b2 := uuid.NewString(), uuid.NewString()
	g1 := uuid.NewString()

	a := models.FilterState{
		Types:      []string{t2, t1},
		Categories: []string{c3, c1, c2},
		Terms: map[string][]string{
			"brand": {b2, b1},
			"grape": {g1},
		},
		Page:    1,
		PerPage: 24,
	}
	b := models.FilterState{
		Types:      []string{t1, t2},
		Categories: []string{c2, c3, c1},
		Terms: map[string][]string{
			"grape": {g1},
			"brand": {b1, b2},
		},
		Page:    1,
		PerPage: 24,
	}

	assert.Equal(t, SearchKey(a), SearchKey(b))
}

func TestSearchKey_DistinctStatesGetDistinctKeys(t *testing.T) {
	t1, t2 := uuid.NewString(), uuid.NewString()
	base := models.FilterState{Types: []string{t1}, Page: 1, PerPage: 24}

	variants := []models.FilterState{
		{Types: []string{t2}, Page: 1, PerPage: 24},
		{Types: []string{t1}, Page: 2, PerPage: 24},
		{Types: []string{t1}, Page: 1, PerPage: 48},
		{Types: []string{t1}, Page: 1, PerPage: 24, Sort: "-price"},
		{Types: []string{t1}, Page: 1, PerPage: 24, Query: "merlot"},
	}

	seen := map[string]bool{SearchKey(base): true}
	for _, v := range variants {
		key := SearchKey(v)
		assert.False(t, seen[key], "key collision for %+v", v)
		seen[key] = true
	}
}

func TestSearchKey_EmptyStateUsesAllSegment(t *testing.T) {
	key := SearchKey(models.FilterState{Page: 1, PerPage: 24})
	assert.Equal(t, "store:products:all:sort-default:page-1:per-24", key)
}

func TestSearchKey_MalformedIDsAreDropped(t *testing.T) {
	t1 := uuid.NewString()
	b1 := uuid.NewString()

	clean := models.FilterState{
		Types:   []string{t1},
		Terms:   map[string][]string{"brand": {b1}},
		Page:    1,
		PerPage: 24,
	}
	polluted := models.FilterState{
		Types:   []string{t1, "not-a-uuid"},
		Terms:   map[string][]string{"brand": {"42", b1}},
		Page:    1,
		PerPage: 24,
	}

	// the engine ignores malformed ids, so the key must too
	assert.Equal(t, SearchKey(clean), SearchKey(polluted))
}

func TestSearchKey_OnlyMalformedIDsCollapseToUnfilteredKey(t *testing.T) {
	bogus := models.FilterState{
		Types:   []string{"asc"},
		Terms:   map[string][]string{"dir": {"asc"}},
		Page:    1,
		PerPage: 24,
	}

	assert.Equal(t, SearchKey(models.FilterState{Page: 1, PerPage: 24}), SearchKey(bogus))
}

func TestSearchKey_PriceAndRangeSegments(t *testing.T) {
	min := int64(100000)
	alcMax := 15.0
	f := models.FilterState{
		PriceMin: &min,
		Ranges:   map[string]models.RangeBound{"alcohol": {Max: &alcMax}},
		Page:     1,
		PerPage:  24,
	}

	key := SearchKey(f)
	assert.Contains(t, key, "price-100000-x")
	assert.Contains(t, key, "alc-x-15")
}

func TestSearchKey_QueryIsHashedAndTrimmed(t *testing.T) {
	a := SearchKey(models.FilterState{Query: "merlot", Page: 1, PerPage: 24})
	b := SearchKey(models.FilterState{Query: "  merlot  ", Page: 1, PerPage: 24})
	c := SearchKey(models.FilterState{Query: "syrah", Page: 1, PerPage: 24})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "merlot") // raw term never leaks into the key
}

// ============================================================================
// Tags
// ============================================================================

func TestSearchTags_AlwaysIncludesGlobalTag(t *testing.T) {
	assert.Contains(t, SearchTags(models.FilterState{}), TagGlobal)
}

func TestSearchTags_OneTagPerConcreteFilterValue(t *testing.T) {
	t1 := uuid.NewString()
	c1, c2 := uuid.NewString(), uuid.NewString()
	b1 := uuid.NewString()

	f := models.FilterState{
		Types:      []string{t1},
		Categories: []string{c1, c2},
		Terms:      map[string][]string{"brand": {b1}},
	}

	tags := SearchTags(f)

	assert.ElementsMatch(t, []string{
		TagGlobal, "type:" + t1, "category:" + c1, "category:" + c2, "brand:" + b1,
	}, tags)
}

func TestSearchTags_MalformedIDsAreDropped(t *testing.T) {
	t1 := uuid.NewString()

	f := models.FilterState{
		Types:      []string{t1, "asc"},
		Categories: []string{"42"},
		Terms:      map[string][]string{"dir": {"desc"}},
	}

	assert.ElementsMatch(t, []string{TagGlobal, "type:" + t1}, SearchTags(f))
}

// ============================================================================
// TTL tiers
// ============================================================================

func TestSearchTTL_Tiers(t *testing.T) {
	min := int64(100000)
	t1 := uuid.NewString()

	tests := []struct {
		name string
		f    models.FilterState
		want time.Duration
	}{
		{"text search", models.FilterState{Query: "merlot"}, TTLSearch},
		{"search wins over filters", models.FilterState{Query: "merlot", Types: []string{t1}}, TTLSearch},
		{"filtered", models.FilterState{Types: []string{t1}}, TTLFiltered},
		{"price filtered", models.FilterState{PriceMin: &min}, TTLFiltered},
		{"unfiltered list", models.FilterState{}, TTLUnfiltered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchTTL(tt.f))
		})
	}
}

// ============================================================================
// Tag-set lifetime
// ============================================================================

func TestTagSetTTL_OutlivesEveryEntryTier(t *testing.T) {
	// a tag set expiring before its entries would strand live keys from
	// invalidation; one expiring never would grow without bound
	for _, ttl := range []time.Duration{TTLSearch, TTLFiltered, TTLUnfiltered} {
		assert.GreaterOrEqual(t, TagSetTTL, ttl)
	}
}

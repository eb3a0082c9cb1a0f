package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/products?"+rawQuery, nil)
	return c
}

func TestParseFilterState_Defaults(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, ""))

	assert.Empty(t, f.Types)
	assert.Empty(t, f.Categories)
	assert.Empty(t, f.Terms)
	assert.Empty(t, f.Ranges)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 24, f.PerPage)
	assert.Nil(t, f.Cursor)
}

func TestParseFilterState_RepeatedAndCommaJoinedIDs(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "type=t1&category=c1,c2&category=c3"))

	assert.Equal(t, []string{"t1"}, f.Types)
	assert.Equal(t, []string{"c1", "c2", "c3"}, f.Categories)
}

func TestParseFilterState_NonReservedKeysBecomeTermGroups(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "brand=b1&brand=b2&origin=o1&sort=-price&q=merlot"))

	assert.Equal(t, []string{"b1", "b2"}, f.Terms["brand"])
	assert.Equal(t, []string{"o1"}, f.Terms["origin"])
	assert.Equal(t, "-price", f.Sort)
	assert.Equal(t, "merlot", f.Query)

	// reserved keys never leak into the taxonomy map
	for _, key := range []string{"sort", "dir", "q", "page", "per_page", "cursor", "price_min", "price_max"} {
		assert.NotContains(t, f.Terms, key)
	}
}

func TestParseFilterState_DirParamIsNotATermGroup(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "dir=asc&sort=price"))

	assert.Empty(t, f.Terms)
	assert.False(t, f.HasFilters())
	assert.Equal(t, "price", f.Sort)
}

func TestParseFilterState_PriceBounds(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "price_min=100000&price_max=900000"))

	require.NotNil(t, f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, int64(100000), *f.PriceMin)
	assert.Equal(t, int64(900000), *f.PriceMax)
}

func TestParseFilterState_MalformedPriceIsDropped(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "price_min=cheap&price_max=1e6"))

	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
}

func TestParseFilterState_RangeParams(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "range%5Balcohol%5D%5Bmin%5D=12&range%5Balcohol%5D%5Bmax%5D=15.5"))

	bound, ok := f.Ranges["alcohol"]
	require.True(t, ok)
	require.NotNil(t, bound.Min)
	require.NotNil(t, bound.Max)
	assert.Equal(t, 12.0, *bound.Min)
	assert.Equal(t, 15.5, *bound.Max)
}

func TestParseFilterState_BadRangeParamsAreSkipped(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric bound", "range%5Balcohol%5D%5Bmin%5D=strong"},
		{"invalid attr code", "range%5Ba%27b%5D%5Bmin%5D=1"},
		{"missing bound side", "range%5Balcohol%5D=12"},
		{"empty code", "range%5B%5D%5Bmin%5D=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseFilterState(ctxWithQuery(t, tt.query))
			assert.Empty(t, f.Ranges)
		})
	}
}

func TestParseFilterState_CursorDerivesPage(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "cursor=48&per_page=24"))

	require.NotNil(t, f.Cursor)
	assert.Equal(t, 48, *f.Cursor)
	assert.Equal(t, 3, f.Page)
}

func TestParseFilterState_ExplicitPageWinsOverCursor(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "cursor=48&page=2&per_page=24"))

	assert.Nil(t, f.Cursor)
	assert.Equal(t, 2, f.Page)
}

func TestParseFilterState_NegativeCursorIsIgnored(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "cursor=-10"))

	assert.Nil(t, f.Cursor)
	assert.Equal(t, 1, f.Page)
}

func TestParsePagination_Caps(t *testing.T) {
	f := parseFilterState(ctxWithQuery(t, "page=0&per_page=5000"))
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 24, f.PerPage)

	f = parseFilterState(ctxWithQuery(t, "page=3&per_page=100"))
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 100, f.PerPage)
}

func TestSplitMulti(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitMulti([]string{"a,b", "c"}))
	assert.Equal(t, []string{"a"}, splitMulti([]string{" a , ", ""}))
	assert.Empty(t, splitMulti([]string{",,"}))
}

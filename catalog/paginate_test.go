package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Overflow recovery
// ============================================================================

func TestResolvePage_OverflowFallsBackToPageOne(t *testing.T) {
	// total=60, per_page=24 → 3 pages; page 50 is stale client state
	assert.Equal(t, 1, ResolvePage(60, 24, 50))
	assert.Equal(t, 1, ResolvePage(60, 24, 4))
}

func TestResolvePage_ValidPagesPassThrough(t *testing.T) {
	assert.Equal(t, 1, ResolvePage(60, 24, 1))
	assert.Equal(t, 2, ResolvePage(60, 24, 2))
	assert.Equal(t, 3, ResolvePage(60, 24, 3))
}

func TestResolvePage_EmptySetKeepsRequestedPage(t *testing.T) {
	// an empty result set is correct as-is, no fallback
	assert.Equal(t, 7, ResolvePage(0, 24, 7))
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 3, LastPage(60, 24))
	assert.Equal(t, 3, LastPage(72, 24))
	assert.Equal(t, 4, LastPage(73, 24))
	assert.Equal(t, 1, LastPage(1, 24))
	assert.Equal(t, 1, LastPage(0, 24))
}

// ============================================================================
// Cursor arithmetic (thin re-expression of page mode)
// ============================================================================

func TestPageFromCursor(t *testing.T) {
	assert.Equal(t, 1, PageFromCursor(0, 24))
	assert.Equal(t, 1, PageFromCursor(23, 24))
	assert.Equal(t, 2, PageFromCursor(24, 24))
	assert.Equal(t, 3, PageFromCursor(48, 24))
	assert.Equal(t, 1, PageFromCursor(-5, 24))
	assert.Equal(t, 1, PageFromCursor(10, 0))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, ClampCursor(-3, 60, 24))
	assert.Equal(t, 24, ClampCursor(24, 60, 24))
	assert.Equal(t, 36, ClampCursor(48, 60, 24)) // clamped to total-returned
	assert.Equal(t, 0, ClampCursor(10, 0, 0))
}

func TestBuildMeta_MiddlePage(t *testing.T) {
	meta := buildMeta(60, 24, 2, 24)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 24, meta.PerPage)
	assert.Equal(t, 60, meta.Total)
	assert.Equal(t, 3, meta.LastPage)
	assert.True(t, meta.HasMore)
	assert.Equal(t, 24, meta.Cursor)

	require.NotNil(t, meta.NextCursor)
	assert.Equal(t, 48, *meta.NextCursor)
	require.NotNil(t, meta.PreviousCursor)
	assert.Equal(t, 0, *meta.PreviousCursor)
}

func TestBuildMeta_LastPage(t *testing.T) {
	meta := buildMeta(60, 24, 3, 12)

	assert.False(t, meta.HasMore)
	assert.Nil(t, meta.NextCursor)
	require.NotNil(t, meta.PreviousCursor)
	assert.Equal(t, 24, *meta.PreviousCursor)
	// cursor clamped to total-returned
	assert.Equal(t, 48, meta.Cursor)
}

func TestBuildMeta_FirstAndOnlyPage(t *testing.T) {
	meta := buildMeta(10, 24, 1, 10)

	assert.Equal(t, 1, meta.LastPage)
	assert.False(t, meta.HasMore)
	assert.Nil(t, meta.NextCursor)
	assert.Nil(t, meta.PreviousCursor)
	assert.Equal(t, 0, meta.Cursor)
}

func TestBuildMeta_EmptySet(t *testing.T) {
	meta := buildMeta(0, 24, 1, 0)

	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 1, meta.LastPage)
	assert.False(t, meta.HasMore)
	assert.Equal(t, 0, meta.Cursor)
}

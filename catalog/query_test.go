package catalog

import (
	"testing"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ListModeLoadsCoverAtMinPosition(t *testing.T) {
	db := dryRunDB(t)

	q := Assemble(db, models.FilterState{}, ModeList)

	conds, ok := q.Statement.Preloads["Images"]
	require.True(t, ok)
	require.NotEmpty(t, conds)

	// galleries do not always start at position 0, so the cover condition
	// must select the minimum, not a literal zero
	cond, ok := conds[0].(string)
	require.True(t, ok)
	assert.Contains(t, cond, "MIN(i.position)")
	assert.NotContains(t, cond, "position = ?")
}

func TestAssemble_DetailModeLoadsFullRelations(t *testing.T) {
	db := dryRunDB(t)

	q := Assemble(db, models.FilterState{}, ModeDetail)

	for _, relation := range []string{"Images", "ProductType", "Categories", "Terms", "Terms.Group"} {
		assert.Contains(t, q.Statement.Preloads, relation)
	}
}

func TestAssemble_ScopesToActiveProducts(t *testing.T) {
	db := dryRunDB(t)

	sql := buildSQL(Assemble(db, models.FilterState{}, ModeList))

	assert.Contains(t, sql, "products.active")
}

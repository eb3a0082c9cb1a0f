package catalog

import (
	"testing"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"merlot", "merlot"},
		{"50% off", `50\% off`},
		{"pinot_noir", `pinot\_noir`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), "input %q", tt.in)
	}
}

func TestApplyKeyword_BlankTermIsNoOp(t *testing.T) {
	db := dryRunDB(t)

	plain := buildSQL(baseQuery(db))
	for _, term := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, plain, buildSQL(ApplyKeyword(baseQuery(db), term)), "term %q", term)
	}
}

func TestApplyKeyword_CombinesFullTextAndSubstringFallback(t *testing.T) {
	db := dryRunDB(t)

	var rows []models.Product
	stmt := ApplyKeyword(baseQuery(db), "merlot").Find(&rows).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "plainto_tsquery('simple'")
	assert.Contains(t, sql, "products.name ILIKE")
	assert.Contains(t, sql, "products.slug ILIKE")
	assert.Contains(t, sql, "products.description ILIKE")
}

func TestApplyKeyword_EscapesWildcardsInFallbackPattern(t *testing.T) {
	db := dryRunDB(t)

	var rows []models.Product
	stmt := ApplyKeyword(baseQuery(db), "50% off").Find(&rows).Statement

	// raw term feeds the text query, escaped pattern feeds the ILIKEs
	assert.Contains(t, stmt.Vars, "50% off")
	assert.Contains(t, stmt.Vars, `%50\% off%`)
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("id", "title", "price").
		Build()

	assert.Equal(t, "SELECT id, title, price FROM products", stmt.SQL)
	assert.Empty(t, stmt.Args)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
}

func TestBuilder_Join(t *testing.T) {
	stmt := From("products p").
		Select("p.id", "u.pseudo").
		Join("users u", "p.user_id = u.id").
		Build()

	assert.Equal(t, "SELECT p.id, u.pseudo FROM products p JOIN users u ON p.user_id = u.id", stmt.SQL)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("id").
		Where(Eq("category_item_id", int64(3))).
		Where(Eq("status", "for_sale"), IsNull("cart_id")).
		Build()

	assert.Equal(t, "SELECT id FROM products WHERE category_item_id = @p0 AND status = @p1 AND cart_id IS NULL", stmt.SQL)
	assert.Equal(t, []interface{}{int64(3), "for_sale"}, stmt.Args)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(3),
		"p1": "for_sale",
	}, stmt.Params)
}

func TestBuilder_OrderBy(t *testing.T) {
	asc := From("products").Select("id").OrderBy("date", Asc).Build()
	desc := From("products").Select("id").OrderBy("date", Desc).Build()

	assert.Equal(t, "SELECT id FROM products ORDER BY date ASC", asc.SQL)
	assert.Equal(t, "SELECT id FROM products ORDER BY date DESC", desc.SQL)
}

func TestBuilder_ThenBy(t *testing.T) {
	base := From("products").Select("id").OrderBy("price", Asc)
	stmt := base.ThenBy("id", Asc).Build()

	assert.Equal(t, "SELECT id FROM products ORDER BY price ASC, id ASC", stmt.SQL)
	// base keeps its single key
	assert.Equal(t, "SELECT id FROM products ORDER BY price ASC", base.Build().SQL)

	// OrderBy replaces every earlier key
	reset := base.ThenBy("id", Asc).OrderBy("date", Desc).Build()
	assert.Equal(t, "SELECT id FROM products ORDER BY date DESC", reset.SQL)

	// Count drops the ordering
	assert.Equal(t, "SELECT COUNT(*) FROM products", base.ThenBy("id", Asc).Count().Build().SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("id").
		Limit(12).
		Offset(24).
		Build()

	assert.Equal(t, "SELECT id FROM products LIMIT @p0 OFFSET @p1", stmt.SQL)
	assert.Equal(t, []interface{}{int64(12), int64(24)}, stmt.Args)
}

func TestBuilder_ZeroOffsetOmitted(t *testing.T) {
	stmt := From("products").Select("id").Limit(12).Offset(0).Build()

	assert.Equal(t, "SELECT id FROM products LIMIT @p0", stmt.SQL)
}

func TestBuilder_PostgresDialect(t *testing.T) {
	stmt := From("products p").
		Dialect(Postgres).
		Select("p.id").
		Where(ContainsFold("p.title", "Lamp"), Eq("p.status", "for_sale")).
		OrderBy("p.date", Desc).
		Limit(12).
		Offset(12).
		Build()

	assert.Equal(t, "SELECT p.id FROM products p WHERE LOWER(p.title) LIKE $1 AND p.status = $2 ORDER BY p.date DESC LIMIT $3 OFFSET $4", stmt.SQL)
	assert.Equal(t, []interface{}{"%lamp%", "for_sale", int64(12), int64(12)}, stmt.Args)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("products p").
		Select("p.id", "p.title").
		Join("users u", "p.user_id = u.id").
		Where(Eq("p.status", "for_sale")).
		OrderBy("p.date", Desc).
		Limit(12).
		Offset(36)

	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "LIMIT @p1")
	assert.Contains(t, mainStmt.SQL, "OFFSET @p2")

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products p JOIN users u ON p.user_id = u.id WHERE p.status = @p0", countStmt.SQL)
	assert.Equal(t, []interface{}{"for_sale"}, countStmt.Args)

	// the original builder is unchanged
	assert.Equal(t, mainStmt.SQL, builder.Build().SQL)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("id")

	stmt1 := base.Where(Eq("status", "sold")).Build()
	stmt2 := base.Where(Eq("category_item_id", int64(1))).Build()

	assert.Contains(t, stmt1.SQL, "status = @p0")
	assert.NotContains(t, stmt1.SQL, "category_item_id")

	assert.Contains(t, stmt2.SQL, "category_item_id = @p0")
	assert.NotContains(t, stmt2.SQL, "status")
}

func TestBuilder_SpannerStatement(t *testing.T) {
	stmt := From("products").Select("id").Where(Eq("id", int64(7))).Build().Spanner()

	assert.Equal(t, "SELECT id FROM products WHERE id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": int64(7)}, stmt.Params)
}

func TestBuilder_String(t *testing.T) {
	str := From("products").Select("id").Where(Eq("status", "for_sale")).String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Args:")
}

func TestCondition_ContainsFold(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		pattern string
	}{
		{"plain term", "Chair", "%chair%"},
		{"percent escaped", "50%", `%50\%%`},
		{"underscore escaped", "a_b", `%a\_b%`},
		{"backslash escaped", `a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := ContainsFold("p.title", tt.term).SQL(Spanner, 2)
			assert.Equal(t, "LOWER(p.title) LIKE @p2", sql)
			assert.Equal(t, []interface{}{tt.pattern}, args)
		})
	}
}

func TestCondition_Gt(t *testing.T) {
	sql, args := Gt("c.date", "x").SQL(Postgres, 0)

	assert.Equal(t, "c.date > $1", sql)
	assert.Equal(t, []interface{}{"x"}, args)
}

func TestCondition_NullChecks(t *testing.T) {
	sql, args := IsNull("p.cart_id").SQL(Spanner, 0)
	assert.Equal(t, "p.cart_id IS NULL", sql)
	assert.Empty(t, args)

	sql, args = IsNotNull("p.cart_id").SQL(Spanner, 0)
	assert.Equal(t, "p.cart_id IS NOT NULL", sql)
	assert.Empty(t, args)

	sql, _ = IsTrue("c.status_validation").SQL(Postgres, 0)
	assert.Equal(t, "c.status_validation = TRUE", sql)
}

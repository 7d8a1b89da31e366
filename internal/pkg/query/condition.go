package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations render a SQL fragment for the target dialect and
// return the bound values in placeholder order.
type Condition interface {
	// SQL returns the SQL fragment and the ordered values it binds.
	// paramIndex is the index of the first placeholder this condition may use.
	SQL(d Dialect, paramIndex int) (string, []interface{})
}

// compareCondition implements binary comparisons (field <op> value).
type compareCondition struct {
	field    string
	operator string
	value    interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "for_sale") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, operator: "=", value: value}
}

// Gt creates a WHERE condition for a strict greater-than comparison.
func Gt(field string, value interface{}) Condition {
	return &compareCondition{field: field, operator: ">", value: value}
}

// SQL generates the SQL fragment for the comparison.
func (c *compareCondition) SQL(d Dialect, paramIndex int) (string, []interface{}) {
	sql := fmt.Sprintf("%s %s %s", c.field, c.operator, d.Placeholder(paramIndex))
	return sql, []interface{}{c.value}
}

// containsCondition implements a case-insensitive substring match.
type containsCondition struct {
	field string
	term  string
}

// ContainsFold creates a case-insensitive substring match.
// LIKE metacharacters in term are escaped, so the term always matches literally.
// Example: ContainsFold("p.title", "Chair") generates "LOWER(p.title) LIKE @p0" bound to "%chair%"
func ContainsFold(field, term string) Condition {
	return &containsCondition{field: field, term: term}
}

// SQL generates the SQL fragment for the substring match.
func (c *containsCondition) SQL(d Dialect, paramIndex int) (string, []interface{}) {
	sql := fmt.Sprintf("LOWER(%s) LIKE %s", c.field, d.Placeholder(paramIndex))
	pattern := "%" + escapeLike(strings.ToLower(c.term)) + "%"
	return sql, []interface{}{pattern}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters with the backslash escape
// shared by Spanner and PostgreSQL.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("p.cart_id") generates "p.cart_id IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// isNullCondition implements IS NULL comparison.
type isNullCondition struct {
	field string
}

// SQL generates the SQL fragment for IS NULL comparison.
func (c *isNullCondition) SQL(d Dialect, paramIndex int) (string, []interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), nil
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("p.cart_id") generates "p.cart_id IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

// isNotNullCondition implements IS NOT NULL comparison.
type isNotNullCondition struct {
	field string
}

// SQL generates the SQL fragment for IS NOT NULL comparison.
func (c *isNotNullCondition) SQL(d Dialect, paramIndex int) (string, []interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), nil
}

// IsTrue creates a WHERE condition on a boolean column.
func IsTrue(field string) Condition {
	return &isTrueCondition{field: field}
}

type isTrueCondition struct {
	field string
}

func (c *isTrueCondition) SQL(d Dialect, paramIndex int) (string, []interface{}) {
	return fmt.Sprintf("%s = TRUE", c.field), nil
}

package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// String returns the SQL keyword for the direction.
func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Dialect selects the placeholder syntax of the generated SQL.
type Dialect int

const (
	// Spanner renders named parameters (@p0, @p1, ...).
	Spanner Dialect = iota
	// Postgres renders positional parameters ($1, $2, ...).
	Postgres
)

// Placeholder returns the placeholder for the parameter at index.
func (d Dialect) Placeholder(index int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", index+1)
	}
	return fmt.Sprintf("@p%d", index)
}

// Statement is a rendered query. Args holds the values in placeholder
// order; Params holds the same values keyed by Spanner parameter name.
type Statement struct {
	SQL    string
	Args   []interface{}
	Params map[string]interface{}
}

// Spanner converts the statement for use with a Spanner client.
func (s Statement) Spanner() spanner.Statement {
	return spanner.Statement{
		SQL:    s.SQL,
		Params: s.Params,
	}
}

// Builder constructs SQL SELECT queries.
// It provides a fluent API for building queries with JOINs, WHERE clauses,
// ORDER BY, LIMIT, and OFFSET. Every method returns a new Builder, so a
// base query can be shared between a count and a page fetch.
type Builder struct {
	dialect      Dialect
	table        string
	selectCols   []string
	joins        []string
	whereClauses []Condition
	orderBy      []orderTerm
	limitVal     int64
	offsetVal    int64
}

// orderTerm is one ORDER BY key.
type orderTerm struct {
	column    string
	direction Direction
}

// From creates a new Builder for the specified table (optionally aliased, "products p").
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		joins:        []string{},
		whereClauses: []Condition{},
	}
}

// Dialect sets the placeholder syntax.
func (b *Builder) Dialect(d Dialect) *Builder {
	newBuilder := b.clone()
	newBuilder.dialect = d
	return newBuilder
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = append(newBuilder.selectCols, columns...)
	return newBuilder
}

// Join adds an INNER JOIN. on is a static join predicate, it never carries values.
func (b *Builder) Join(table, on string) *Builder {
	newBuilder := b.clone()
	newBuilder.joins = append(newBuilder.joins, fmt.Sprintf("JOIN %s ON %s", table, on))
	return newBuilder
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(conditions ...Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, conditions...)
	return newBuilder
}

// OrderBy specifies the column and direction for sorting, replacing any
// earlier ordering.
// column is written verbatim; callers must pass allow-listed columns only.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderBy = []orderTerm{{column: column, direction: direction}}
	return newBuilder
}

// ThenBy appends a secondary sort key, used to break ties of the
// previous keys. Same verbatim rule as OrderBy.
func (b *Builder) ThenBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderBy = append(newBuilder.orderBy, orderTerm{column: column, direction: direction})
	return newBuilder
}

// Limit sets the maximum number of rows to return. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	newBuilder := b.clone()
	newBuilder.offsetVal = offset
	return newBuilder
}

// Count returns a new builder that generates a COUNT(*) query
// with the same FROM, JOIN and WHERE clauses.
func (b *Builder) Count() *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = []string{"COUNT(*)"}
	newBuilder.limitVal = 0
	newBuilder.offsetVal = 0
	newBuilder.orderBy = nil
	return newBuilder
}

// Build constructs the final Statement with SQL and parameters.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	var args []interface{}

	bind := func(value interface{}) string {
		placeholder := b.dialect.Placeholder(len(args))
		args = append(args, value)
		return placeholder
	}

	// SELECT clause
	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	// FROM clause
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, join := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(join)
	}

	// WHERE clause
	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		for _, condition := range b.whereClauses {
			fragment, values := condition.SQL(b.dialect, len(args))
			whereParts = append(whereParts, fragment)
			args = append(args, values...)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	// ORDER BY clause
	if len(b.orderBy) > 0 {
		keys := make([]string, 0, len(b.orderBy))
		for _, term := range b.orderBy {
			keys = append(keys, term.column+" "+term.direction.String())
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(keys, ", "))
	}

	// LIMIT clause
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(bind(b.limitVal))
	}

	// OFFSET clause
	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET ")
		sql.WriteString(bind(b.offsetVal))
	}

	params := make(map[string]interface{}, len(args))
	for i, v := range args {
		params[fmt.Sprintf("p%d", i)] = v
	}

	return Statement{
		SQL:    sql.String(),
		Args:   args,
		Params: params,
	}
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		dialect:      b.dialect,
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		joins:        make([]string, len(b.joins)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderBy:      make([]orderTerm, len(b.orderBy)),
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(newBuilder.selectCols, b.selectCols)
	copy(newBuilder.joins, b.joins)
	copy(newBuilder.whereClauses, b.whereClauses)
	copy(newBuilder.orderBy, b.orderBy)
	return newBuilder
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}

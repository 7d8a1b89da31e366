package domain

import (
	"fmt"
	"strings"

	"github.com/light-bringer/market-service/internal/pkg/query"
)

// sortColumns is the allow-list of catalog sort fields.
var sortColumns = map[string]string{
	"date":  "p.date",
	"price": "p.price",
	"title": "p.title",
	"id":    "p.id",
}

// Sort is a validated catalog ordering.
type Sort struct {
	field     string
	direction query.Direction
}

// DefaultSort lists the newest products first.
func DefaultSort() Sort {
	return Sort{field: "date", direction: query.Desc}
}

// ParseSort validates a requested field and direction.
// Empty values fall back to the defaults (date, DESC).
func ParseSort(field, direction string) (Sort, error) {
	s := DefaultSort()

	if field = strings.ToLower(strings.TrimSpace(field)); field != "" {
		if _, ok := sortColumns[field]; !ok {
			return Sort{}, fmt.Errorf("%w: field %q", ErrInvalidSort, field)
		}
		s.field = field
	}

	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "":
	case "ASC":
		s.direction = query.Asc
	case "DESC":
		s.direction = query.Desc
	default:
		return Sort{}, fmt.Errorf("%w: direction %q", ErrInvalidSort, direction)
	}

	return s, nil
}

// Field returns the public field name.
func (s Sort) Field() string {
	if s.field == "" {
		return DefaultSort().field
	}
	return s.field
}

// Column returns the allow-listed SQL column.
func (s Sort) Column() string {
	return sortColumns[s.Field()]
}

// Direction returns the ordering direction.
func (s Sort) Direction() query.Direction {
	if s.field == "" {
		return DefaultSort().direction
	}
	return s.direction
}

package repositories

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Specification is an immutable query description passed by value. Each
// method returns a new copy, so callers can branch and combine predicates
// without order-dependent mutation.
type Specification struct {
	conditions []sq.Sqlizer
	orderBy    []string
	limit      uint64
	offset     uint64
}

func NewSpecification() Specification {
	return Specification{}
}

func (s Specification) Where(cond sq.Sqlizer) Specification {
	conditions := make([]sq.Sqlizer, len(s.conditions), len(s.conditions)+1)
	copy(conditions, s.conditions)
	s.conditions = append(conditions, cond)
	return s
}

// Search adds a case-insensitive substring predicate ORed over the given
// columns. An empty term is a no-op.
func (s Specification) Search(term string, columns ...string) Specification {
	if term == "" || len(columns) == 0 {
		return s
	}
	pattern := fmt.Sprintf("%%%s%%", term)
	var ors []sq.Sqlizer
	for _, col := range columns {
		ors = append(ors, sq.ILike{col: pattern})
	}
	return s.Where(sq.Or(ors))
}

func (s Specification) OrderBy(clauses ...string) Specification {
	orderBy := make([]string, len(s.orderBy), len(s.orderBy)+len(clauses))
	copy(orderBy, s.orderBy)
	s.orderBy = append(orderBy, clauses...)
	return s
}

func (s Specification) Limit(limit, offset uint64) Specification {
	s.limit = limit
	s.offset = offset
	return s
}

// Apply stamps the specification onto a squirrel select builder.
func (s Specification) Apply(builder sq.SelectBuilder) sq.SelectBuilder {
	for _, cond := range s.conditions {
		builder = builder.Where(cond)
	}
	if len(s.orderBy) > 0 {
		builder = builder.OrderBy(s.orderBy...)
	}
	if s.limit > 0 {
		builder = builder.Limit(s.limit).Offset(s.offset)
	}
	return builder
}

// psql is the shared statement builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

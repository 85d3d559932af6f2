package db

import (
	"fmt"
	"strings"

	"project_factory/core"
)

// substringFilter renders as a case-insensitive containment match on a
// column known at compile time. Only the value travels as a bind argument.
type substringFilter struct {
	column string
	value  string
}

// listQuery assembles SELECT statements for the list endpoints. Every
// user-supplied value goes through a $n placeholder; the query text itself is
// built only from declared table and column names.
type listQuery struct {
	table   string
	orderBy string
	filters []substringFilter
	opts    core.ListOptions
}

func (q listQuery) withFilter(column, value string) listQuery {
	if value == "" {
		return q
	}
	q.filters = append(q.filters, substringFilter{column: column, value: value})
	return q
}

func (q listQuery) build() (string, []any) {
	opts := q.opts.Normalize()

	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(q.table)

	args := make([]any, 0, len(q.filters)+2)
	for i, f := range q.filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, "%"+f.value+"%")
		fmt.Fprintf(&sb, "%s ILIKE $%d", f.column, len(args))
	}

	fmt.Fprintf(&sb, " ORDER BY %s", q.orderBy)

	args = append(args, opts.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	args = append(args, (opts.Page-1)*opts.Limit)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}

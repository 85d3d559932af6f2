package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"project_factory/core"
)

func TestListQueryNoFilters(t *testing.T) {
	query, args := listQuery{
		table:   "users",
		orderBy: "id",
		opts:    core.ListOptions{Page: 1, Limit: 10},
	}.build()

	require.Equal(t, "SELECT * FROM users ORDER BY id LIMIT $1 OFFSET $2", query)
	require.Equal(t, []any{10, 0}, args)
}

func TestListQueryFilters(t *testing.T) {
	query, args := listQuery{
		table:   "users",
		orderBy: "id",
		opts:    core.ListOptions{Page: 2, Limit: 5},
	}.
		withFilter("name", "ali").
		withFilter("email", "@example.com").
		build()

	require.Equal(t,
		"SELECT * FROM users WHERE name ILIKE $1 AND email ILIKE $2 ORDER BY id LIMIT $3 OFFSET $4",
		query,
	)
	require.Equal(t, []any{"%ali%", "%@example.com%", 5, 5}, args)
}

func TestListQueryEmptyFilterValueIgnored(t *testing.T) {
	query, args := listQuery{
		table:   "teams",
		orderBy: "id",
		opts:    core.ListOptions{Page: 1, Limit: 10},
	}.
		withFilter("name", "").
		build()

	require.Equal(t, "SELECT * FROM teams ORDER BY id LIMIT $1 OFFSET $2", query)
	require.Equal(t, []any{10, 0}, args)
}

func TestListQueryClampsPagination(t *testing.T) {
	query, args := listQuery{
		table:   "projects",
		orderBy: "id",
		opts:    core.ListOptions{Page: -3, Limit: 0},
	}.build()

	require.Equal(t, "SELECT * FROM projects ORDER BY id LIMIT $1 OFFSET $2", query)
	require.Equal(t, []any{core.DefaultLimit, 0}, args, "negative page must not produce a negative offset")
}

func TestListQueryOffsetFollowsPage(t *testing.T) {
	_, args := listQuery{
		table:   "work_items",
		orderBy: "id",
		opts:    core.ListOptions{Page: 4, Limit: 25},
	}.build()

	require.Equal(t, []any{25, 75}, args)
}

func TestListQueryValuesNeverInQueryText(t *testing.T) {
	query, _ := listQuery{
		table:   "users",
		orderBy: "id",
		opts:    core.ListOptions{Page: 1, Limit: 10},
	}.
		withFilter("name", "'; DROP TABLE users; --").
		build()

	require.NotContains(t, query, "DROP TABLE", "filter values must only travel as bind arguments")
	require.Equal(t, "SELECT * FROM users WHERE name ILIKE $1 ORDER BY id LIMIT $2 OFFSET $3", query)
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"project_factory/core"
)

type ProjectDB struct {
	db *DB
}

func NewProjectDB(db *DB) *ProjectDB {
	return &ProjectDB{db}
}

type projectRow struct {
	ID          uuid.UUID  `db:"id"`
	AzureID     *string    `db:"azure_id"`
	Name        *string    `db:"name"`
	Description *string    `db:"description"`
	URL         *string    `db:"url"`
	Template    *string    `db:"template"`
	TeamID      *uuid.UUID `db:"team_id"`
}

func (r projectRow) toCore() core.Project {
	return core.Project{
		ID:          r.ID,
		AzureID:     r.AzureID,
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Template:    r.Template,
		TeamID:      r.TeamID,
	}
}

// Add verifies the owning team and inserts the project in one transaction, so
// the team cannot vanish between the check and the insert.
func (p *ProjectDB) Add(ctx context.Context, project core.Project) (core.Project, error) {
	tx, err := p.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return core.Project{}, err
	}
	defer tx.Rollback()

	var teamID uuid.UUID
	err = tx.GetContext(ctx, &teamID, `SELECT id FROM teams WHERE id = $1`, project.TeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Project{}, fmt.Errorf("%w: team %s", core.ErrDependencyNotFound, project.TeamID)
		}
		return core.Project{}, err
	}

	var inserted projectRow
	err = tx.GetContext(
		ctx,
		&inserted,
		`INSERT INTO projects (id, azure_id, name, description, url, template, team_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, azure_id, name, description, url, template, team_id`,
		uuid.New(), project.AzureID, project.Name, project.Description,
		project.URL, project.Template, teamID,
	)
	if err != nil {
		return core.Project{}, translateError(err)
	}

	if err = tx.Commit(); err != nil {
		return core.Project{}, err
	}

	return inserted.toCore(), nil
}

func (p *ProjectDB) List(ctx context.Context, filter core.ProjectFilter, opts core.ListOptions) ([]core.Project, error) {
	query, args := listQuery{table: "projects", orderBy: "id", opts: opts}.
		withFilter("name", filter.Name).
		build()

	var rows []projectRow
	if err := p.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	projects := make([]core.Project, len(rows))
	for i, r := range rows {
		projects[i] = r.toCore()
	}
	return projects, nil
}

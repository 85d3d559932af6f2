package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"project_factory/core"
)

type TeamDB struct {
	db *DB
}

func NewTeamDB(db *DB) *TeamDB {
	return &TeamDB{db}
}

type teamRow struct {
	ID          uuid.UUID `db:"id"`
	AzureID     *string   `db:"azure_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
}

func (r teamRow) toCore() core.Team {
	return core.Team{
		ID:          r.ID,
		AzureID:     r.AzureID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type membershipRow struct {
	TeamID uuid.UUID `db:"team_id"`
	UserID uuid.UUID `db:"user_id"`
}

// Add creates the team row plus one membership row per member reference in a
// single transaction. Member references are external user ids; if any of them
// does not match an existing user the whole create is rolled back.
func (t *TeamDB) Add(ctx context.Context, team core.Team, memberRefs []string) (core.Team, []core.User, error) {
	tx, err := t.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return core.Team{}, nil, err
	}
	defer tx.Rollback()

	var members []userRow
	err = tx.SelectContext(
		ctx,
		&members,
		`SELECT id, azure_id, name, email, team_id
		 FROM users WHERE azure_id = ANY($1::varchar[])`,
		pq.Array(memberRefs),
	)
	if err != nil {
		return core.Team{}, nil, err
	}
	if len(members) != len(memberRefs) {
		return core.Team{}, nil, fmt.Errorf("%w: one or more users not found", core.ErrDependencyNotFound)
	}

	var inserted teamRow
	err = tx.GetContext(
		ctx,
		&inserted,
		`INSERT INTO teams (id, azure_id, name, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, azure_id, name, description`,
		uuid.New(), team.AzureID, team.Name, team.Description,
	)
	if err != nil {
		return core.Team{}, nil, translateError(err)
	}

	if len(members) > 0 {
		memberships := make([]membershipRow, len(members))
		for i, m := range members {
			memberships[i] = membershipRow{
				TeamID: inserted.ID,
				UserID: m.ID,
			}
		}

		_, err = tx.NamedExecContext(
			ctx,
			`INSERT INTO team_users (team_id, user_id)
			 VALUES (:team_id, :user_id)`,
			memberships,
		)
		if err != nil {
			return core.Team{}, nil, translateError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return core.Team{}, nil, err
	}

	coreMembers := make([]core.User, len(members))
	for i, m := range members {
		coreMembers[i] = m.toCore()
	}

	return inserted.toCore(), coreMembers, nil
}

func (t *TeamDB) List(ctx context.Context, filter core.TeamFilter, opts core.ListOptions) ([]core.Team, error) {
	query, args := listQuery{table: "teams", orderBy: "id", opts: opts}.
		withFilter("name", filter.Name).
		build()

	var rows []teamRow
	if err := t.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	teams := make([]core.Team, len(rows))
	for i, r := range rows {
		teams[i] = r.toCore()
	}
	return teams, nil
}

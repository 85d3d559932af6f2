package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"project_factory/core"
)

type UserDB struct {
	db *DB
}

func NewUserDB(db *DB) *UserDB {
	return &UserDB{db}
}

type userRow struct {
	ID      uuid.UUID  `db:"id"`
	AzureID *string    `db:"azure_id"`
	Name    *string    `db:"name"`
	Email   *string    `db:"email"`
	TeamID  *uuid.UUID `db:"team_id"`
}

func (r userRow) toCore() core.User {
	return core.User{
		ID:      r.ID,
		AzureID: r.AzureID,
		Name:    r.Name,
		Email:   r.Email,
		TeamID:  r.TeamID,
	}
}

func (u *UserDB) Add(ctx context.Context, user core.User) (core.User, error) {
	var inserted userRow
	err := u.db.conn.GetContext(
		ctx,
		&inserted,
		`INSERT INTO users (id, azure_id, name, email, team_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, azure_id, name, email, team_id`,
		uuid.New(), user.AzureID, user.Name, user.Email, user.TeamID,
	)
	if err != nil {
		return core.User{}, translateError(err)
	}
	return inserted.toCore(), nil
}

func (u *UserDB) Get(ctx context.Context, id uuid.UUID) (core.User, error) {
	var row userRow
	err := u.db.conn.GetContext(
		ctx,
		&row,
		`SELECT id, azure_id, name, email, team_id FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, core.ErrNotFound
		}
		return core.User{}, err
	}
	return row.toCore(), nil
}

func (u *UserDB) List(ctx context.Context, filter core.UserFilter, opts core.ListOptions) ([]core.User, error) {
	query, args := listQuery{table: "users", orderBy: "id", opts: opts}.
		withFilter("name", filter.Name).
		withFilter("email", filter.Email).
		build()

	var rows []userRow
	if err := u.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	users := make([]core.User, len(rows))
	for i, r := range rows {
		users[i] = r.toCore()
	}
	return users, nil
}

// Update patches name and email, keeping the current value for any field the
// patch leaves unset.
func (u *UserDB) Update(ctx context.Context, id uuid.UUID, patch core.UserPatch) (core.User, error) {
	var row userRow
	err := u.db.conn.GetContext(
		ctx,
		&row,
		`UPDATE users
		 SET name = COALESCE($1, name), email = COALESCE($2, email)
		 WHERE id = $3
		 RETURNING id, azure_id, name, email, team_id`,
		patch.Name, patch.Email, id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, core.ErrNotFound
		}
		return core.User{}, err
	}
	return row.toCore(), nil
}

func (u *UserDB) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := u.db.conn.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrNotFound
	}
	return nil
}

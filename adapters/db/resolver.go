package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"project_factory/core"
)

// resolver turns external (azure) ids from a create payload into internal
// ids, inside the transaction of the operation that carries them. A miss on a
// Required reference aborts with ErrDependencyNotFound; a miss on a Soft
// reference resolves to nil.
type resolver struct {
	tx *sqlx.Tx
}

func (r resolver) lookup(ctx context.Context, table, ref string, policy core.ResolvePolicy) (*uuid.UUID, error) {
	var id uuid.UUID
	err := r.tx.GetContext(ctx, &id, `SELECT id FROM `+table+` WHERE azure_id = $1`, ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if policy == core.ResolveSoft {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: no row in %s with azure_id %q", core.ErrDependencyNotFound, table, ref)
		}
		return nil, err
	}
	return &id, nil
}

func (r resolver) userID(ctx context.Context, ref string, policy core.ResolvePolicy) (*uuid.UUID, error) {
	return r.lookup(ctx, "users", ref, policy)
}

func (r resolver) projectID(ctx context.Context, ref string, policy core.ResolvePolicy) (*uuid.UUID, error) {
	return r.lookup(ctx, "projects", ref, policy)
}

func (r resolver) workItemID(ctx context.Context, ref string, policy core.ResolvePolicy) (*uuid.UUID, error) {
	return r.lookup(ctx, "work_items", ref, policy)
}

package db

import (
	"database/sql"
	"errors"
	"log/slog"
	"project_factory/core"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func NewDB(log *slog.Logger, address string, maxConns int) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)

	return &DB{
		log:  log,
		conn: db,
	}, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

// translateError maps driver errors onto the core sentinels so nothing above
// the storage layer sees pgconn or sql internals.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case UniqueViolation:
			return core.ErrAlreadyExists
		case ForeignKeyViolation:
			return core.ErrDependencyNotFound
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return core.ErrNotFound
	}
	return err
}

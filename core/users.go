package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type UserService struct {
	log *slog.Logger
	db  UserDB
}

func NewUserService(log *slog.Logger, db UserDB) *UserService {
	return &UserService{
		log: log,
		db:  db,
	}
}

func (u *UserService) Create(ctx context.Context, user User) (User, error) {
	created, err := u.db.Add(ctx, user)
	if err != nil {
		u.log.Error("failed to create user", "error", err)
		return User{}, err
	}
	return created, nil
}

func (u *UserService) Get(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := u.db.Get(ctx, id)
	if err != nil {
		u.log.Error("failed to get user", "id", id, "error", err)
		return User{}, err
	}
	return user, nil
}

func (u *UserService) List(ctx context.Context, filter UserFilter, opts ListOptions) ([]User, error) {
	users, err := u.db.List(ctx, filter, opts)
	if err != nil {
		u.log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (u *UserService) Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error) {
	user, err := u.db.Update(ctx, id, patch)
	if err != nil {
		u.log.Error("failed to update user", "id", id, "error", err)
		return User{}, err
	}
	return user, nil
}

func (u *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.db.Delete(ctx, id); err != nil {
		u.log.Error("failed to delete user", "id", id, "error", err)
		return err
	}
	return nil
}

package core

import (
	"context"
	"fmt"
	"log/slog"
)

type TeamService struct {
	log *slog.Logger
	db  TeamDB
}

func NewTeamService(log *slog.Logger, db TeamDB) *TeamService {
	return &TeamService{
		log: log,
		db:  db,
	}
}

// Create inserts the team together with one membership row per resolved
// member reference. Either everything lands or nothing does.
func (t *TeamService) Create(ctx context.Context, team Team, memberRefs []string) (Team, []User, error) {
	if team.Name == "" {
		return Team{}, nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}

	created, members, err := t.db.Add(ctx, team, memberRefs)
	if err != nil {
		t.log.Error("failed to create team", "error", err)
		return Team{}, nil, err
	}
	return created, members, nil
}

func (t *TeamService) List(ctx context.Context, filter TeamFilter, opts ListOptions) ([]Team, error) {
	teams, err := t.db.List(ctx, filter, opts)
	if err != nil {
		t.log.Error("failed to list teams", "error", err)
		return nil, err
	}
	return teams, nil
}

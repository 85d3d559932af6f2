package core

import (
	"context"
	"fmt"
	"log/slog"
)

type ProjectService struct {
	log *slog.Logger
	db  ProjectDB
}

func NewProjectService(log *slog.Logger, db ProjectDB) *ProjectService {
	return &ProjectService{
		log: log,
		db:  db,
	}
}

func (p *ProjectService) Create(ctx context.Context, project Project) (Project, error) {
	if project.TeamID == nil {
		return Project{}, fmt.Errorf("%w: team_id is required", ErrValidation)
	}

	created, err := p.db.Add(ctx, project)
	if err != nil {
		p.log.Error("failed to create project", "error", err)
		return Project{}, err
	}
	return created, nil
}

func (p *ProjectService) List(ctx context.Context, filter ProjectFilter, opts ListOptions) ([]Project, error) {
	projects, err := p.db.List(ctx, filter, opts)
	if err != nil {
		p.log.Error("failed to list projects", "error", err)
		return nil, err
	}
	return projects, nil
}

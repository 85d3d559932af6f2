package core

import (
	"context"
	"fmt"
	"log/slog"
)

type WorkItemService struct {
	log *slog.Logger
	db  WorkItemDB
}

func NewWorkItemService(log *slog.Logger, db WorkItemDB) *WorkItemService {
	return &WorkItemService{
		log: log,
		db:  db,
	}
}

// Create resolves the draft's references and inserts the work item in one
// transaction. Project and creator must resolve, the assignee too when
// supplied; a parent reference that resolves to nothing is dropped.
func (w *WorkItemService) Create(ctx context.Context, draft WorkItemDraft) (WorkItem, error) {
	if draft.Title == "" {
		return WorkItem{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if draft.ProjectRef == "" {
		return WorkItem{}, fmt.Errorf("%w: project is required", ErrValidation)
	}
	if draft.CreatedByRef == "" {
		return WorkItem{}, fmt.Errorf("%w: created_by_id is required", ErrValidation)
	}

	item, err := w.db.Add(ctx, draft)
	if err != nil {
		w.log.Error("failed to create work item", "error", err)
		return WorkItem{}, err
	}
	return item, nil
}

func (w *WorkItemService) List(ctx context.Context, filter WorkItemFilter, opts ListOptions) ([]WorkItem, error) {
	items, err := w.db.List(ctx, filter, opts)
	if err != nil {
		w.log.Error("failed to list work items", "error", err)
		return nil, err
	}
	return items, nil
}

package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"project_factory/core"
)

type WorkItemDB struct {
	db *DB
}

func NewWorkItemDB(db *DB) *WorkItemDB {
	return &WorkItemDB{db}
}

type workItemRow struct {
	ID            uuid.UUID      `db:"id"`
	AzureID       *string        `db:"azure_id"`
	Title         string         `db:"title"`
	Type          string         `db:"w_type"`
	State         string         `db:"state"`
	ProjectID     uuid.UUID      `db:"project"`
	AssignedToID  *uuid.UUID     `db:"assigned_to_id"`
	CreatedByID   uuid.UUID      `db:"created_by_id"`
	CreatedDate   time.Time      `db:"created_date"`
	ChangedDate   *time.Time     `db:"changed_date"`
	Priority      *int           `db:"priority"`
	Severity      *string        `db:"severity"`
	Description   *string        `db:"description"`
	AreaPath      *string        `db:"area_path"`
	IterationPath *string        `db:"iteration_path"`
	ParentID      *uuid.UUID     `db:"parent_id"`
	Tags          pq.StringArray `db:"tags"`
	URL           string         `db:"url"`
}

func (r workItemRow) toCore() core.WorkItem {
	return core.WorkItem{
		ID:            r.ID,
		AzureID:       r.AzureID,
		Title:         r.Title,
		Type:          r.Type,
		State:         r.State,
		ProjectID:     r.ProjectID,
		AssignedToID:  r.AssignedToID,
		CreatedByID:   r.CreatedByID,
		CreatedDate:   r.CreatedDate,
		ChangedDate:   r.ChangedDate,
		Priority:      r.Priority,
		Severity:      r.Severity,
		Description:   r.Description,
		AreaPath:      r.AreaPath,
		IterationPath: r.IterationPath,
		ParentID:      r.ParentID,
		Tags:          r.Tags,
		URL:           r.URL,
	}
}

const workItemColumns = `id, azure_id, title, w_type, state, project,
	assigned_to_id, created_by_id, created_date, changed_date, priority,
	severity, description, area_path, iteration_path, parent_id, tags, url`

// Add resolves the draft's external references and inserts the work item,
// all inside one transaction. Project and creator must resolve, the assignee
// too when present; the parent lookup is soft, so an unknown parent reference
// leaves parent_id unset instead of failing the create.
func (w *WorkItemDB) Add(ctx context.Context, draft core.WorkItemDraft) (core.WorkItem, error) {
	tx, err := w.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return core.WorkItem{}, err
	}
	defer tx.Rollback()

	res := resolver{tx: tx}

	projectID, err := res.projectID(ctx, draft.ProjectRef, core.ResolveRequired)
	if err != nil {
		return core.WorkItem{}, err
	}

	createdByID, err := res.userID(ctx, draft.CreatedByRef, core.ResolveRequired)
	if err != nil {
		return core.WorkItem{}, err
	}

	var assignedToID *uuid.UUID
	if draft.AssignedToRef != nil {
		assignedToID, err = res.userID(ctx, *draft.AssignedToRef, core.ResolveRequired)
		if err != nil {
			return core.WorkItem{}, err
		}
	}

	var parentID *uuid.UUID
	if draft.ParentRef != nil {
		parentID, err = res.workItemID(ctx, *draft.ParentRef, core.ResolveSoft)
		if err != nil {
			return core.WorkItem{}, err
		}
	}

	var inserted workItemRow
	err = tx.GetContext(
		ctx,
		&inserted,
		`INSERT INTO work_items (id, azure_id, title, w_type, state, project,
			assigned_to_id, created_by_id, priority, severity, description,
			area_path, iteration_path, parent_id, tags, url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING `+workItemColumns,
		uuid.New(), draft.AzureID, draft.Title, draft.Type, draft.State,
		projectID, assignedToID, createdByID, draft.Priority, draft.Severity,
		draft.Description, draft.AreaPath, draft.IterationPath, parentID,
		pq.StringArray(draft.Tags), draft.URL,
	)
	if err != nil {
		return core.WorkItem{}, translateError(err)
	}

	if err = tx.Commit(); err != nil {
		return core.WorkItem{}, err
	}

	return inserted.toCore(), nil
}

func (w *WorkItemDB) List(ctx context.Context, filter core.WorkItemFilter, opts core.ListOptions) ([]core.WorkItem, error) {
	query, args := listQuery{table: "work_items", orderBy: "id", opts: opts}.
		withFilter("title", filter.Title).
		withFilter("state", filter.State).
		build()

	var rows []workItemRow
	if err := w.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]core.WorkItem, len(rows))
	for i, r := range rows {
		items[i] = r.toCore()
	}
	return items, nil
}

package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"project_factory/core"
)

type WorkItem struct {
	ID            uuid.UUID  `json:"id"`
	AzureID       *string    `json:"azure_id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	State         string     `json:"state"`
	ProjectID     uuid.UUID  `json:"project"`
	AssignedToID  *uuid.UUID `json:"assigned_to_id"`
	CreatedByID   uuid.UUID  `json:"created_by_id"`
	CreatedDate   time.Time  `json:"created_date"`
	ChangedDate   *time.Time `json:"changed_date"`
	Priority      *int       `json:"priority"`
	Severity      *string    `json:"severity"`
	Description   *string    `json:"description"`
	AreaPath      *string    `json:"area_path"`
	IterationPath *string    `json:"iteration_path"`
	ParentID      *uuid.UUID `json:"parent_id"`
	Tags          []string   `json:"tags"`
	URL           string     `json:"url"`
}

func toWorkItem(w core.WorkItem) WorkItem {
	return WorkItem{
		ID:            w.ID,
		AzureID:       w.AzureID,
		Title:         w.Title,
		Type:          w.Type,
		State:         w.State,
		ProjectID:     w.ProjectID,
		AssignedToID:  w.AssignedToID,
		CreatedByID:   w.CreatedByID,
		CreatedDate:   w.CreatedDate,
		ChangedDate:   w.ChangedDate,
		Priority:      w.Priority,
		Severity:      w.Severity,
		Description:   w.Description,
		AreaPath:      w.AreaPath,
		IterationPath: w.IterationPath,
		ParentID:      w.ParentID,
		Tags:          w.Tags,
		URL:           w.URL,
	}
}

type createWorkItemRequest struct {
	AzureID       *string  `json:"azure_id"`
	Title         string   `json:"title"`
	Type          string   `json:"w_type"`
	State         string   `json:"state"`
	Project       string   `json:"project"`
	AssignedToID  *string  `json:"assigned_to_id"`
	CreatedByID   string   `json:"created_by_id"`
	Priority      *int     `json:"priority"`
	Severity      *string  `json:"severity"`
	Description   *string  `json:"description"`
	AreaPath      *string  `json:"area_path"`
	IterationPath *string  `json:"iteration_path"`
	ParentID      *string  `json:"parent_id"`
	Tags          []string `json:"tags"`
	URL           string   `json:"url"`
}

type workItemCreatedResponse struct {
	Status string   `json:"status"`
	Data   WorkItem `json:"data"`
}

type workItemListResponse struct {
	Status    string     `json:"status"`
	Result    int        `json:"result"`
	WorkItems []WorkItem `json:"work_items"`
}

func NewCreateWorkItemHandler(log *slog.Logger, items core.WorkItemPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createWorkItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		item, err := items.Create(r.Context(), core.WorkItemDraft{
			AzureID:       req.AzureID,
			Title:         req.Title,
			Type:          req.Type,
			State:         req.State,
			ProjectRef:    req.Project,
			AssignedToRef: req.AssignedToID,
			CreatedByRef:  req.CreatedByID,
			Priority:      req.Priority,
			Severity:      req.Severity,
			Description:   req.Description,
			AreaPath:      req.AreaPath,
			IterationPath: req.IterationPath,
			ParentRef:     req.ParentID,
			Tags:          req.Tags,
			URL:           req.URL,
		})
		if err != nil {
			switch {
			case errors.Is(err, core.ErrValidation):
				writeError(log, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, core.ErrDependencyNotFound):
				writeError(log, w, http.StatusNotFound, err.Error())
			default:
				log.Error("create work item problem", "error", err)
				writeError(log, w, http.StatusInternalServerError, "failed to create work item")
			}
			return
		}

		writeJSON(log, w, http.StatusCreated, workItemCreatedResponse{
			Status: statusSuccess,
			Data:   toWorkItem(item),
		})
	}
}

func NewListWorkItemsHandler(log *slog.Logger, items core.WorkItemPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptions(r).Normalize()
		filter := core.WorkItemFilter{
			Title: r.URL.Query().Get("title"),
			State: r.URL.Query().Get("state"),
		}

		found, err := items.List(r.Context(), filter, opts)
		if err != nil {
			log.Error("list work items problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to list work items")
			return
		}

		resp := workItemListResponse{
			Status:    statusSuccess,
			Result:    len(found),
			WorkItems: make([]WorkItem, len(found)),
		}
		for i, item := range found {
			resp.WorkItems[i] = toWorkItem(item)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

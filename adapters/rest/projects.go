package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"project_factory/core"
)

type Project struct {
	ID          uuid.UUID  `json:"id"`
	AzureID     *string    `json:"azure_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	Template    *string    `json:"template"`
	TeamID      *uuid.UUID `json:"team_id"`
}

func toProject(p core.Project) Project {
	return Project{
		ID:          p.ID,
		AzureID:     p.AzureID,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.URL,
		Template:    p.Template,
		TeamID:      p.TeamID,
	}
}

type createProjectRequest struct {
	AzureID     *string    `json:"azure_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	Template    *string    `json:"template"`
	TeamID      *uuid.UUID `json:"team_id"`
}

type projectResponse struct {
	Status  string  `json:"status"`
	Project Project `json:"project"`
}

type projectListResponse struct {
	Status   string    `json:"status"`
	Result   int       `json:"result"`
	Projects []Project `json:"projects"`
}

func NewCreateProjectHandler(log *slog.Logger, projects core.ProjectPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		project, err := projects.Create(r.Context(), core.Project{
			AzureID:     req.AzureID,
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			Template:    req.Template,
			TeamID:      req.TeamID,
		})
		if err != nil {
			switch {
			case errors.Is(err, core.ErrValidation):
				writeError(log, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, core.ErrDependencyNotFound):
				writeError(log, w, http.StatusNotFound, "team not found")
			default:
				log.Error("create project problem", "error", err)
				writeError(log, w, http.StatusInternalServerError, "failed to create project")
			}
			return
		}

		writeJSON(log, w, http.StatusOK, projectResponse{
			Status:  statusSuccess,
			Project: toProject(project),
		})
	}
}

func NewListProjectsHandler(log *slog.Logger, projects core.ProjectPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptions(r).Normalize()
		filter := core.ProjectFilter{Name: r.URL.Query().Get("name")}

		found, err := projects.List(r.Context(), filter, opts)
		if err != nil {
			log.Error("list projects problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to list projects")
			return
		}

		resp := projectListResponse{
			Status:   statusSuccess,
			Result:   len(found),
			Projects: make([]Project, len(found)),
		}
		for i, p := range found {
			resp.Projects[i] = toProject(p)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"project_factory/core"
)

type Team struct {
	ID          uuid.UUID `json:"id"`
	AzureID     *string   `json:"azure_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

func toTeam(t core.Team) Team {
	return Team{
		ID:          t.ID,
		AzureID:     t.AzureID,
		Name:        t.Name,
		Description: t.Description,
	}
}

type createTeamRequest struct {
	AzureID     *string  `json:"azure_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	UserIDs     []string `json:"user_ids"`
}

// TeamWithUsers is the create response shape: the team plus its resolved
// members, always present even when empty.
type TeamWithUsers struct {
	Team
	Users []User `json:"users"`
}

type teamCreatedResponse struct {
	Status string        `json:"status"`
	Data   TeamWithUsers `json:"data"`
}

type teamListResponse struct {
	Status string `json:"status"`
	Result int    `json:"result"`
	Teams  []Team `json:"teams"`
}

func NewCreateTeamHandler(log *slog.Logger, teams core.TeamPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		team, members, err := teams.Create(r.Context(), core.Team{
			AzureID:     req.AzureID,
			Name:        req.Name,
			Description: req.Description,
		}, req.UserIDs)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrValidation):
				writeError(log, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, core.ErrDependencyNotFound):
				writeError(log, w, http.StatusBadRequest, "one or more users not found")
			case errors.Is(err, core.ErrAlreadyExists):
				writeError(log, w, http.StatusConflict, "team already exists")
			default:
				log.Error("create team problem", "error", err)
				writeError(log, w, http.StatusInternalServerError, "failed to create team")
			}
			return
		}

		data := TeamWithUsers{
			Team:  toTeam(team),
			Users: make([]User, len(members)),
		}
		for i, m := range members {
			data.Users[i] = toUser(m)
		}

		writeJSON(log, w, http.StatusCreated, teamCreatedResponse{
			Status: statusSuccess,
			Data:   data,
		})
	}
}

func NewListTeamsHandler(log *slog.Logger, teams core.TeamPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptions(r).Normalize()
		filter := core.TeamFilter{Name: r.URL.Query().Get("name")}

		found, err := teams.List(r.Context(), filter, opts)
		if err != nil {
			log.Error("list teams problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to list teams")
			return
		}

		resp := teamListResponse{
			Status: statusSuccess,
			Result: len(found),
			Teams:  make([]Team, len(found)),
		}
		for i, t := range found {
			resp.Teams[i] = toTeam(t)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

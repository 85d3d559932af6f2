package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"project_factory/core"
)

type User struct {
	ID      uuid.UUID  `json:"id"`
	AzureID *string    `json:"azure_id"`
	Name    *string    `json:"name"`
	Email   *string    `json:"email"`
	TeamID  *uuid.UUID `json:"team_id,omitempty"`
}

func toUser(u core.User) User {
	return User{
		ID:      u.ID,
		AzureID: u.AzureID,
		Name:    u.Name,
		Email:   u.Email,
		TeamID:  u.TeamID,
	}
}

type createUserRequest struct {
	AzureID *string `json:"azure_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
}

type userResponse struct {
	Status string `json:"status"`
	User   User   `json:"user"`
}

type userListResponse struct {
	Status string `json:"status"`
	Result int    `json:"result"`
	Users  []User `json:"users"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func NewCreateUserHandler(log *slog.Logger, users core.UserPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		user, err := users.Create(r.Context(), core.User{
			AzureID: req.AzureID,
			Name:    req.Name,
			Email:   req.Email,
		})
		if err != nil {
			log.Error("create user problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to create user")
			return
		}

		writeJSON(log, w, http.StatusOK, userResponse{
			Status: statusSuccess,
			User:   toUser(user),
		})
	}
}

func NewListUsersHandler(log *slog.Logger, users core.UserPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := listOptions(r).Normalize()
		filter := core.UserFilter{
			Name:  r.URL.Query().Get("name"),
			Email: r.URL.Query().Get("email"),
		}

		found, err := users.List(r.Context(), filter, opts)
		if err != nil {
			log.Error("list users problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to list users")
			return
		}

		resp := userListResponse{
			Status: statusSuccess,
			Result: len(found),
			Users:  make([]User, len(found)),
			Page:   opts.Page,
			Limit:  opts.Limit,
		}
		for i, u := range found {
			resp.Users[i] = toUser(u)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

func NewGetUserHandler(log *slog.Logger, users core.UserPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(log, w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := users.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				writeError(log, w, http.StatusNotFound, "user not found")
				return
			}
			log.Error("get user problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to get user")
			return
		}

		writeJSON(log, w, http.StatusOK, userResponse{
			Status: statusSuccess,
			User:   toUser(user),
		})
	}
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func NewUpdateUserHandler(log *slog.Logger, users core.UserPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(log, w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("decode body problem", "error", err)
			writeError(log, w, http.StatusBadRequest, "bad request body")
			return
		}

		user, err := users.Update(r.Context(), id, core.UserPatch{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				writeError(log, w, http.StatusNotFound, "user not found")
				return
			}
			log.Error("update user problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to update user")
			return
		}

		writeJSON(log, w, http.StatusOK, userResponse{
			Status: statusSuccess,
			User:   toUser(user),
		})
	}
}

func NewDeleteUserHandler(log *slog.Logger, users core.UserPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(log, w, http.StatusBadRequest, "invalid user id")
			return
		}

		if err := users.Delete(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				writeError(log, w, http.StatusNotFound, "user not found")
				return
			}
			log.Error("delete user problem", "error", err)
			writeError(log, w, http.StatusInternalServerError, "failed to delete user")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

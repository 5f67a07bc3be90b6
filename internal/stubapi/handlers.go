// Package stubapi is a local stand-in for the remote roster API. It speaks
// the same envelope contract over a sqlite store.
package stubapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
	"github.com/10Draken01/Docker-Front/internal/storage"
)

// UserHandler handles HTTP requests related to adventurers.
type UserHandler struct {
	store  storage.UserStore
	logger *log.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store storage.UserStore, logger *log.Logger) *UserHandler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &UserHandler{store: store, logger: logger}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.UserList(r.Context())
	if err != nil {
		h.internalError(w, r, "list", err)
		return
	}
	RespondWithData(w, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	user, err := h.store.UserGet(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "get", err)
		return
	}
	RespondWithData(w, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.UserCreationData
	if err := DecodeJSONBody(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := ValidateCreation(req); err != nil {
		RespondWithError(w, http.StatusUnprocessableEntity, flatten(err))
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	user, err := h.store.UserAdd(r.Context(), req)
	if err != nil {
		h.internalError(w, r, "create", err)
		return
	}
	h.logger.Info(r.Context(), "Adventurer stored", log.Fields{"id": user.ID, "username": user.Username})
	RespondWithData(w, http.StatusCreated, user)
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch model.UserPatch
	if err := DecodeJSONBody(r, &patch); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := ValidatePatch(patch); err != nil {
		RespondWithError(w, http.StatusUnprocessableEntity, flatten(err))
		return
	}
	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		patch.Username = &trimmed
	}

	user, err := h.store.UserUpdate(r.Context(), id, patch)
	if err != nil {
		h.storeError(w, r, "update", err)
		return
	}
	RespondWithData(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.UserDelete(r.Context(), id); err != nil {
		h.storeError(w, r, "delete", err)
		return
	}
	RespondWithData(w, http.StatusOK, map[string]string{"id": id})
}

func (h *UserHandler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, storage.ErrUserNotFound) {
		RespondWithError(w, http.StatusNotFound, "Aventurero no encontrado")
		return
	}
	h.internalError(w, r, op, err)
}

func (h *UserHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(r.Context(), "Roster store failed", log.Fields{"operation": op, "error": err})
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// flatten joins the messages of an errors.Join result on one line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

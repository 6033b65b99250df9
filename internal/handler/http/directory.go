package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/service"
	"github.com/storegate/gateway/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := userQueryFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed user query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, status, err := h.services.Directory.ListUsers(ctx, query)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, users)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("malformed user id")
		http.Error(w, "user id must be an integer", http.StatusBadRequest)
		return
	}

	user, status, err := h.services.Directory.UserByID(ctx, id)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(login); err != nil {
		log.Err(err).Msg("missing credentials")
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, status, err := h.services.Directory.Login(ctx, login)
	if err != nil {
		if errors.Is(err, service.ErrTokenCreationFailed) {
			log.Err(err).Msg("creation of token failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeFatal(w, r, err)
		return
	}
	// The session token is the only output of a login; the merged user
	// record stays internal.
	writeResolved(w, r, status, tokenResponse{Token: user.Token})
}

// tokenResponse is the login response body.
type tokenResponse struct {
	Token string `json:"token"`
}

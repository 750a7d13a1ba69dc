package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/transport"
	"shopsquare/pkg/profile/model"
	"shopsquare/pkg/profile/service"
)

type handler struct {
	svc service.ProfileService
}

func Router(svc service.ProfileService) http.Handler {
	h := &handler{svc: svc}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/profiles").Subrouter()
	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.Profile
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.svc.CreateProfile(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, profile)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.GetAllProfiles(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, profiles)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	profile, err := h.svc.GetProfileByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, profile)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var draft model.Profile
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), id, draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, profile)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProfile(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, refcheck.ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("profile request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/transport"
	"shopsquare/pkg/shop/model"
	"shopsquare/pkg/shop/service"
)

type handler struct {
	svc service.ShopService
}

func Router(svc service.ShopService) http.Handler {
	h := &handler{svc: svc}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/shops").Subrouter()
	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/owner/{ownerId}", h.listByOwner).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.Shop
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shop, err := h.svc.CreateShop(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shop)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	shops, err := h.svc.GetAllShops(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shops)
}

func (h *handler) listByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := transport.PathID(r, "ownerId")
	if err != nil {
		http.Error(w, "invalid owner id", http.StatusBadRequest)
		return
	}

	shops, err := h.svc.GetShopsByOwnerID(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shops)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	shop, err := h.svc.GetShopByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shop)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var draft model.Shop
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shop, err := h.svc.UpdateShop(r.Context(), id, draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shop)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteShop(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Shop deleted successfully"))
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrShopNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, refcheck.ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("shop request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopsquare/pkg/cart/model"
	"shopsquare/pkg/cart/service"
	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/transport"
)

type handler struct {
	svc service.CartService
}

func Router(svc service.CartService) http.Handler {
	h := &handler{svc: svc}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/carts").Subrouter()
	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/user/{userId}", h.listByUser).Methods(http.MethodGet)
	s.HandleFunc("/{id}/items", h.addItem).Methods(http.MethodPost)
	s.HandleFunc("/{id}/items", h.items).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.Cart
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.CreateCart(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, cart)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	carts, err := h.svc.GetAllCarts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, carts)
}

func (h *handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := transport.PathID(r, "userId")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	carts, err := h.svc.GetCartsByUserID(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, carts)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.GetCartByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, cart)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var draft model.Cart
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.UpdateCart(r.Context(), id, draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, cart)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCart(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.AddItemToCart(r.Context(), id, payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	relay(w, resp)
}

func (h *handler) items(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.GetItemsForCart(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	relay(w, resp)
}

// relay writes the downstream response as received, without translation.
func relay(w http.ResponseWriter, resp *service.ProxyResponse) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		log.WithError(err).Error("relay downstream response")
	}
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrCartNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, refcheck.ErrNotConfirmed),
		errors.Is(err, service.ErrUserIDRequired),
		errors.Is(err, service.ErrShopIDRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("cart request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

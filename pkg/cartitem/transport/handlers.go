package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"shopsquare/pkg/cartitem/model"
	"shopsquare/pkg/cartitem/service"
	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/transport"
)

func Router(svc service.CartItemService) http.Handler {
	r := mux.NewRouter()
	s := r.PathPrefix("/api/cart-items").Subrouter()
	h := &handler{svc: svc}

	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

type handler struct {
	svc service.CartItemService
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.CreateCartItem(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("cartId"); raw != "" {
		cartID, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid cartId", http.StatusBadRequest)
			return
		}
		items, err := h.svc.GetCartItemsByCartID(r.Context(), cartID)
		if err != nil {
			writeError(w, err)
			return
		}
		transport.WriteJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.svc.GetAllCartItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.GetCartItemByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var draft model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.UpdateCartItem(r.Context(), id, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCartItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrCartItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrCartIDRequired),
		errors.Is(err, service.ErrProductIDRequired),
		errors.Is(err, service.ErrQuantityRequired),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, refcheck.ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

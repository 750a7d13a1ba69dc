package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"shopsquare/pkg/orderitem/model"
	"shopsquare/pkg/orderitem/service"
	"shopsquare/pkg/platform/transport"
)

func Router(svc service.OrderItemService) http.Handler {
	r := mux.NewRouter()
	s := r.PathPrefix("/api/order-items").Subrouter()
	h := &handler{svc: svc}

	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/order/{orderId}", h.listByOrder).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

type handler struct {
	svc service.OrderItemService
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.OrderItem
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.CreateOrderItem(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAllOrderItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *handler) listByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := transport.PathID(r, "orderId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.GetOrderItemsByOrderID(r.Context(), orderID)
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

	item, err := h.svc.GetOrderItemByID(r.Context(), id)
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

	var draft model.OrderItem
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.UpdateOrderItem(r.Context(), id, draft)
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

	if err := h.svc.DeleteOrderItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrOrderItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

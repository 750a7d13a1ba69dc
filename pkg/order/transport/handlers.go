package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"shopsquare/pkg/order/model"
	"shopsquare/pkg/order/service"
	"shopsquare/pkg/platform/transport"
)

func Router(svc service.OrderService) http.Handler {
	r := mux.NewRouter()
	s := r.PathPrefix("/api/orders").Subrouter()
	h := &handler{svc: svc}

	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/user/{userId}", h.listByUser).Methods(http.MethodGet)
	s.HandleFunc("/shop/{shopId}", h.listByShop).Methods(http.MethodGet)
	s.HandleFunc("/{id}/status", h.updateStatus).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

type handler struct {
	svc service.OrderService
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.Order
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.GetAllOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, orders)
}

func (h *handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := transport.PathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.svc.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, orders)
}

func (h *handler) listByShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := transport.PathID(r, "shopId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.svc.GetOrdersByShopID(r.Context(), shopID)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, orders)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrderByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var draft model.Order
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateOrder(r.Context(), id, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order)
}

// updateStatus takes the new status as the raw request body. Clients send
// either a bare string or a JSON-quoted one, so quotes are stripped.
func (h *handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	status := strings.Trim(strings.TrimSpace(string(body)), `"`)

	order, err := h.svc.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

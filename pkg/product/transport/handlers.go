package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/transport"
	"shopsquare/pkg/product/model"
	"shopsquare/pkg/product/service"
)

type handler struct {
	svc service.ProductService
}

func Router(svc service.ProductService) http.Handler {
	h := &handler{svc: svc}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/products").Subrouter()
	s.HandleFunc("", h.create).Methods(http.MethodPost)
	s.HandleFunc("", h.list).Methods(http.MethodGet)
	s.HandleFunc("/shop/{shopId}", h.listByShop).Methods(http.MethodGet)
	s.HandleFunc("/{id}/decrement", h.decrementStock).Methods(http.MethodPost)
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)

	return transport.LogMiddleware(r)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var draft model.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.GetAllProducts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) listByShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := transport.PathID(r, "shopId")
	if err != nil {
		http.Error(w, "invalid shop id", http.StatusBadRequest)
		return
	}

	products, err := h.svc.GetProductsByShopID(r.Context(), shopID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.GetProductByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var draft model.Product
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), id, draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decrementStock(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	qty := 1
	if raw := r.URL.Query().Get("qty"); raw != "" {
		qty, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid qty", http.StatusBadRequest)
			return
		}
	}

	product, err := h.svc.DecrementStock(r.Context(), id, qty)
	if err != nil {
		h.writeError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, refcheck.ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("product request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

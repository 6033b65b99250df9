package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storegate/gateway/internal/logger"
)

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := productQueryFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed product query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.Err(err).Msg("invalid product query")
		http.Error(w, "invalid query parameters", http.StatusBadRequest)
		return
	}

	products, status, err := h.services.Catalog.ListProducts(ctx, query)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, products)
}

func (h *Handler) getProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("malformed product id")
		http.Error(w, "product id must be an integer", http.StatusBadRequest)
		return
	}

	product, status, err := h.services.Catalog.ProductByID(ctx, id)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, product)
}

func (h *Handler) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := categoryQueryFromRequest(r, chi.URLParam(r, "category"))
	if err != nil {
		log.Err(err).Msg("malformed category query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		// Covers the inverted price window too; rejected before any
		// upstream call.
		log.Err(err).Msg("invalid category query")
		http.Error(w, "invalid query parameters", http.StatusBadRequest)
		return
	}

	products, status, err := h.services.Catalog.ListByCategoryAndPrice(ctx, query)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, products)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productName := r.URL.Query().Get("productName")

	products, status, err := h.services.Catalog.SearchByName(ctx, productName)
	if err != nil {
		writeFatal(w, r, err)
		return
	}
	writeResolved(w, r, status, products)
}

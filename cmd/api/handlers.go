package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storefront/pkg/catalog"
	"storefront/pkg/otel"
)

// addItemRequest identifies the catalog item to put in the cart.
type addItemRequest struct {
	ID int `json:"id"`
}

// updateQuantityRequest carries the signed quantity adjustment.
type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// listCatalogHandler returns the current catalog.
// @Summary List catalog
// @Produce json
// @Success 200 {array} catalog.Item
// @Router /catalog [get]
func listCatalogHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listCatalogHandler")
	defer span.End()

	items := cat.Items()
	if items == nil {
		items = []catalog.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// refreshCatalogHandler refetches the catalog from the remote feed.
// @Summary Refresh catalog
// @Produce json
// @Success 200 {array} catalog.Item
// @Router /catalog/refresh [post]
func refreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "refreshCatalogHandler")
	defer span.End()

	items := fetcher.Fetch(ctx)
	cat.Replace(items)
	writeJSON(w, http.StatusOK, items)
}

// searchCatalogHandler filters the catalog by a free-text query.
// @Summary Search catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} catalog.ViewState
// @Router /catalog/search [get]
func searchCatalogHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "searchCatalogHandler")
	defer span.End()

	state := catalog.Search(cat.Items(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, state)
}

// getCartHandler returns the cart snapshot with derived totals.
// @Summary Get cart
// @Produce json
// @Success 200 {object} cart.Snapshot
// @Router /cart [get]
func getCartHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, cartStore.Snapshot())
}

// addItemHandler puts one unit of a catalog item in the cart.
// @Summary Add item to cart
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Item id"
// @Success 201 {object} cart.Snapshot
// @Router /cart/items [post]
func addItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addItemHandler")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, ok := cat.ByID(req.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusCreated, cartStore.Add(ctx, item))
}

// removeItemHandler deletes a cart line. Removing an absent line is
// not an error.
// @Summary Remove item from cart
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} cart.Snapshot
// @Router /cart/items/{id} [delete]
func removeItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeItemHandler")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, cartStore.Remove(ctx, id))
}

// updateQuantityHandler adjusts a line quantity by a signed delta.
// Dropping to zero or below removes the line; an absent id is a no-op.
// @Summary Update line quantity
// @Accept json
// @Produce json
// @Param id path int true "Item id"
// @Param delta body updateQuantityRequest true "Quantity delta"
// @Success 200 {object} cart.Snapshot
// @Router /cart/items/{id} [patch]
func updateQuantityHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateQuantityHandler")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, cartStore.UpdateQuantity(ctx, id, req.Delta))
}

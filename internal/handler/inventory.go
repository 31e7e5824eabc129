package handler

import (
	"net/http"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"
)

// InventoryHandler handles inventory HTTP requests.
type InventoryHandler struct {
	store *store.Store
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(st *store.Store) *InventoryHandler {
	return &InventoryHandler{store: st}
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Inventory(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, items)
}

// Get handles GET /api/v1/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.store.InventoryItem(r.Context(), id)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("inventory item not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, item)
}

// Create handles POST /api/v1/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.InventoryItem
	if err := decodeBody(r, &item); err != nil {
		response.Error(w, err)
		return
	}

	if details := validateItem(item); len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid inventory item", details...))
		return
	}

	created, err := h.store.AddInventoryItem(r.Context(), item)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, created)
}

func validateItem(item model.InventoryItem) []apierror.FieldError {
	var details []apierror.FieldError
	if item.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if item.Category == "" {
		details = append(details, apierror.FieldError{Field: "category", Message: "must not be empty"})
	}
	if item.Price < 0 {
		details = append(details, apierror.FieldError{Field: "price", Message: "must not be negative"})
	}
	if item.Quantity < 0 {
		details = append(details, apierror.FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if item.ReorderLevel < 0 {
		details = append(details, apierror.FieldError{Field: "reorder_level", Message: "must not be negative"})
	}
	return details
}

// Update handles PUT /api/v1/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var patch model.InventoryPatch
	if err := decodeBody(r, &patch); err != nil {
		response.Error(w, err)
		return
	}

	if patch.Price != nil && *patch.Price < 0 {
		response.Error(w, apierror.ValidationError("invalid patch",
			apierror.FieldError{Field: "price", Message: "must not be negative"}))
		return
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		response.Error(w, apierror.ValidationError("invalid patch",
			apierror.FieldError{Field: "quantity", Message: "must not be negative"}))
		return
	}

	item, err := h.store.UpdateInventoryItem(r.Context(), id, patch)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("inventory item not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, item)
}

// Delete handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.store.DeleteInventoryItem(r.Context(), id); err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("inventory item not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

// LowStock handles GET /api/v1/inventory/low-stock
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.LowStockItems(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, items)
}

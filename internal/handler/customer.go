package handler

import (
	"net/http"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"
)

// CustomerHandler handles customer HTTP requests.
type CustomerHandler struct {
	store *store.Store
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(st *store.Store) *CustomerHandler {
	return &CustomerHandler{store: st}
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.Customers(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, customers)
}

// Get handles GET /api/v1/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	customer, err := h.store.Customer(r.Context(), id)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("customer not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, customer)
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer model.Customer
	if err := decodeBody(r, &customer); err != nil {
		response.Error(w, err)
		return
	}

	var details []apierror.FieldError
	if customer.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "must not be empty"})
	}
	if customer.Phone == "" {
		details = append(details, apierror.FieldError{Field: "phone", Message: "must not be empty"})
	}
	if len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid customer", details...))
		return
	}

	// New accounts start with a clean purchase history.
	customer.LastPurchase = ""
	customer.TotalSpent = 0

	created, err := h.store.AddCustomer(r.Context(), customer)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, created)
}

// Update handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var patch model.CustomerPatch
	if err := decodeBody(r, &patch); err != nil {
		response.Error(w, err)
		return
	}

	if patch.Name != nil && *patch.Name == "" {
		response.Error(w, apierror.ValidationError("invalid patch",
			apierror.FieldError{Field: "name", Message: "must not be empty"}))
		return
	}

	customer, err := h.store.UpdateCustomer(r.Context(), id, patch)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("customer not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, customer)
}

// Delete handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.store.DeleteCustomer(r.Context(), id); err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("customer not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

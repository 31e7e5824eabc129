package handler

import (
	"net/http"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"
)

// SalesHandler handles sales HTTP requests.
type SalesHandler struct {
	store *store.Store
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(st *store.Store) *SalesHandler {
	return &SalesHandler{store: st}
}

// SaleView is a sale with the customer display name joined in.
type SaleView struct {
	model.Sale
	CustomerName string `json:"customer_name"`
}

// UnknownCustomerName is reported for sales whose customer has been deleted.
const UnknownCustomerName = "Unknown Customer"

func (h *SalesHandler) withNames(r *http.Request, sales []model.Sale) ([]SaleView, error) {
	customers, err := h.store.Customers(r.Context())
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	views := make([]SaleView, len(sales))
	for i, sale := range sales {
		name, ok := names[sale.CustomerID]
		if !ok {
			name = UnknownCustomerName
		}
		views[i] = SaleView{Sale: sale, CustomerName: name}
	}
	return views, nil
}

// List handles GET /api/v1/sales with optional ?start= and ?end=
// inclusive date bounds.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	sales, err := h.store.SalesInRange(r.Context(), start, end)
	if err != nil {
		response.Error(w, apierror.BadRequest(err.Error()))
		return
	}

	views, err := h.withNames(r, sales)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, views)
}

// Get handles GET /api/v1/sales/{id}
func (h *SalesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	sale, err := h.store.Sale(r.Context(), id)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("sale not found"))
			return
		}
		response.Error(w, err)
		return
	}

	views, err := h.withNames(r, []model.Sale{*sale})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, views[0])
}

// Create handles POST /api/v1/sales - records a sale, decrements stock
// and updates the customer's purchase history in one operation.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.NewSale
	if err := decodeBody(r, &input); err != nil {
		response.Error(w, err)
		return
	}

	var details []apierror.FieldError
	if input.CustomerID <= 0 {
		details = append(details, apierror.FieldError{Field: "customer_id", Message: "must be a valid customer id"})
	}
	if len(input.Items) == 0 {
		details = append(details, apierror.FieldError{Field: "items", Message: "must contain at least one item"})
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			details = append(details, apierror.FieldError{Field: "items", Message: "quantities must be positive"})
			break
		}
	}
	for _, item := range input.Items {
		if item.Price < 0 {
			details = append(details, apierror.FieldError{Field: "items", Message: "prices must not be negative"})
			break
		}
	}
	if len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid sale", details...))
		return
	}

	sale, err := h.store.RecordSale(r.Context(), input)
	if err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("customer not found"))
			return
		}
		response.Error(w, err)
		return
	}

	views, err := h.withNames(r, []model.Sale{*sale})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, views[0])
}

// Delete handles DELETE /api/v1/sales/{id}
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.store.DeleteSale(r.Context(), id); err != nil {
		if err == model.ErrNotFound {
			response.Error(w, apierror.NotFound("sale not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agrovet-rest-api/internal/service"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ReportsHandler handles report HTTP requests.
type ReportsHandler struct {
	reports *service.ReportService
	store   *store.Store
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(reports *service.ReportService, st *store.Store) *ReportsHandler {
	return &ReportsHandler{reports: reports, store: st}
}

// Summary handles GET /api/v1/reports/summary
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.DashboardSummary(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, summary)
}

// Sales handles GET /api/v1/reports/sales?start=&end=
func (h *ReportsHandler) Sales(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	report, err := h.reports.SalesInRange(r.Context(), start, end)
	if err != nil {
		response.Error(w, apierror.BadRequest(err.Error()))
		return
	}
	response.OK(w, report)
}

// TopProducts handles GET /api/v1/reports/top-products?limit=
func (h *ReportsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, apierror.BadRequest("invalid limit: "+raw))
			return
		}
		limit = parsed
	}

	products, err := h.store.TopSellingProducts(r.Context(), limit)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, products)
}

// StockHealth handles GET /api/v1/reports/stock-health
func (h *ReportsHandler) StockHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.reports.StockHealthReport(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, health)
}

// Export handles GET /api/v1/reports/export/{report} and streams the
// named report as a plain-text download. Supported names: inventory,
// sales, customers, performance.
func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "report")

	var content string
	var err error
	switch name {
	case "inventory":
		content, err = h.reports.InventoryReportText(r.Context())
	case "sales":
		content, err = h.reports.SalesReportText(r.Context(),
			r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	case "customers":
		content, err = h.reports.CustomerReportText(r.Context())
	case "performance":
		content, err = h.reports.PerformanceReportText(r.Context())
	default:
		response.Error(w, apierror.NotFound("unknown report: "+name))
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}

	filename := fmt.Sprintf("agrovet-%s-report-%s.txt", name, time.Now().UTC().Format("20060102"))
	response.TextAttachment(w, filename, content)
}

package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vbonduro/salesdash/internal/apiclient"
	"github.com/vbonduro/salesdash/internal/export"
	"github.com/vbonduro/salesdash/internal/sales"
)

var saleStatuses = []string{"pending", "completed", "cancelled"}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filters := sales.ParseFilters(r.URL.Query())

	view, err := s.dashboard.Load(r.Context(), filters)
	if err != nil {
		http.Error(w, "failed to load sales", http.StatusBadGateway)
		s.logger.Error("load dashboard failed", zap.Error(err))
		return
	}

	cards, err := dashboardCards(view)
	if err != nil {
		http.Error(w, "failed to render sales", http.StatusInternalServerError)
		s.logger.Error("render dashboard cards failed", zap.Error(err))
		return
	}

	// HTMX partial update: return only the table.
	if r.Header.Get("HX-Request") == "true" {
		if err := s.renderPartial(w, "partials/sales_table.html", view.Sales); err != nil {
			s.logger.Error("render partial failed", zap.Error(err))
		}
		return
	}

	data := map[string]any{
		"Title":        "Sales",
		"ActiveNav":    "sales",
		"View":         view,
		"Cards":        cards,
		"Statuses":     saleStatuses,
		"ReviewFilter": reviewFilter(filters),
		"ExportURL":    exportURL(filters),
	}
	if view.Sales.Previous != nil && filters.Page > 1 {
		prev := filters
		prev.Page--
		data["PrevURL"] = withQuery("/sales", prev.Query())
	}
	if view.Sales.Next != nil {
		next := filters
		next.Page = max(filters.Page, 1) + 1
		data["NextURL"] = withQuery("/sales", next.Query())
	}

	if err := s.renderPage(w, data,
		"base.html", "pages/sales.html", "partials/sales_table.html",
	); err != nil {
		s.logger.Error("render page failed", zap.Error(err))
	}
}

func (s *Server) handleSaleDetail(w http.ResponseWriter, r *http.Request) {
	saleID, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid sale id", http.StatusBadRequest)
		return
	}

	sale, err := s.sales.GetSale(r.Context(), saleID)
	if apiclient.StatusCode(err) == http.StatusNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to get sale", http.StatusBadGateway)
		s.logger.Error("get sale failed", zap.Int64("sale_id", saleID), zap.Error(err))
		return
	}

	if err := s.renderPage(w,
		map[string]any{"Title": "Sale", "ActiveNav": "sales", "Sale": sale},
		"base.html", "pages/sale_detail.html",
	); err != nil {
		s.logger.Error("render page failed", zap.Error(err))
	}
}

func (s *Server) handleQuickSale(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuickSale(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.sales.QuickSale(r.Context(), req)
	if err != nil {
		code := apiclient.StatusCode(err)
		if code == http.StatusBadRequest {
			http.Error(w, "sale rejected by inventory", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to record sale", http.StatusBadGateway)
		s.logger.Error("quick sale failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		return
	}

	s.logger.Info("quick sale recorded", zap.Int64("sale_id", resp.SaleID), zap.Int64("product_id", req.ProductID))
	if err := s.renderPartial(w, "partials/quick_sale_result.html", resp); err != nil {
		s.logger.Error("render partial failed", zap.Error(err))
	}
}

type formError string

func (e formError) Error() string { return string(e) }

func parseQuickSale(r *http.Request) (sales.QuickSaleRequest, error) {
	var req sales.QuickSaleRequest

	productID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("product_id")), 10, 64)
	if err != nil || productID <= 0 {
		return req, formError("valid product id required")
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if err != nil || quantity <= 0 {
		return req, formError("quantity must be a positive number")
	}
	req.ProductID = productID
	req.Quantity = quantity

	if raw := strings.TrimSpace(r.FormValue("unit_price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			return req, formError("unit price must be a non-negative amount")
		}
		req.UnitPrice = &price
	}
	return req, nil
}

func (s *Server) handleExportSales(w http.ResponseWriter, r *http.Request) {
	filters := sales.ParseFilters(r.URL.Query())

	items, err := sales.ListAllSales(r.Context(), s.sales, filters)
	if err != nil {
		http.Error(w, "failed to load sales", http.StatusBadGateway)
		s.logger.Error("export list sales failed", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.xlsx"`)
	if err := export.WriteSalesXLSX(w, items); err != nil {
		s.logger.Error("write sales export failed", zap.Error(err))
	}
}

// exportURL links the export of every page matching filters.
func exportURL(f sales.SalesFilters) string {
	f.Page = 0
	return withQuery("/sales/export.xlsx", f.Query())
}

func reviewFilter(f sales.SalesFilters) string {
	if f.NeedsReview == nil {
		return ""
	}
	return strconv.FormatBool(*f.NeedsReview)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vbonduro/salesdash/internal/apiclient"
	"github.com/vbonduro/salesdash/internal/inventory"
	"github.com/vbonduro/salesdash/internal/sales"
	"github.com/vbonduro/salesdash/internal/ui"
)

// dashboardLoader is the subset of sales.Dashboard the server requires.
type dashboardLoader interface {
	Load(ctx context.Context, filters sales.SalesFilters) (*sales.DashboardView, error)
}

// salesAPI is the subset of sales.SalesService the server requires.
type salesAPI interface {
	ListSales(ctx context.Context, filters sales.SalesFilters) (*sales.SaleList, error)
	GetSale(ctx context.Context, id int64) (*sales.Sale, error)
	QuickSale(ctx context.Context, req sales.QuickSaleRequest) (*sales.QuickSaleResponse, error)
}

// catalogLoader is the subset of inventory.CatalogLoader the server requires.
type catalogLoader interface {
	Load(ctx context.Context, archived bool) (*inventory.Catalog, error)
}

// productAPI is the subset of inventory.ProductService the server requires.
type productAPI interface {
	DeleteProduct(ctx context.Context, id int64) error
	ToggleProductArchive(ctx context.Context, id int64, forceArchive bool) (*inventory.ArchiveResult, error)
}

type Server struct {
	dashboard dashboardLoader
	sales     salesAPI
	catalog   catalogLoader
	products  productAPI
	templates embed.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *zap.Logger
}

func NewServer(
	dashboard dashboardLoader,
	salesSvc salesAPI,
	catalog catalogLoader,
	products productAPI,
	tmpl embed.FS,
	logger *zap.Logger,
) *Server {
	s := &Server{
		dashboard: dashboard,
		sales:     salesSvc,
		catalog:   catalog,
		products:  products,
		templates: tmpl,
		mux:       http.NewServeMux(),
		tmplFuncs: ui.Funcs(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/sales", http.StatusSeeOther)
	})
	s.mux.HandleFunc("GET /sales", s.handleDashboard)
	s.mux.HandleFunc("POST /sales/quick", s.handleQuickSale)
	s.mux.HandleFunc("GET /sales/export.xlsx", s.handleExportSales)
	s.mux.HandleFunc("GET /sales/{id}", s.handleSaleDetail)
	s.mux.HandleFunc("GET /products", s.handleListProducts)
	s.mux.HandleFunc("DELETE /products/{id}", s.handleDeleteProduct)
	s.mux.HandleFunc("POST /products/{id}/toggle-archive", s.handleToggleArchive)
}

// securityHeaders sets browser security headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com https://cdn.tailwindcss.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// requestID tags each request with an id, echoed in the response and passed
// on to API calls made while serving it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(apiclient.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(apiclient.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(apiclient.WithRequestID(r.Context(), id)))
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.String("request_id", w.Header().Get(apiclient.RequestIDHeader)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID(requestLogger(s.logger, securityHeaders(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", zap.String("addr", addr))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses and executes a single named partial template.
// The file must contain exactly one {{define "name"}}...{{end}} block.
func (s *Server) renderPartial(w http.ResponseWriter, file string, data any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, file)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// ParseFS registers both the file-basename template and any {{define}} blocks.
	// The {{define}} template is the one whose name is neither "" nor the file
	// basename.
	basename := file
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		basename = file[idx+1:]
	}
	for _, t := range tmpl.Templates() {
		if n := t.Name(); n != "" && n != basename {
			return t.Execute(w, data)
		}
	}
	return tmpl.ExecuteTemplate(w, basename, data)
}

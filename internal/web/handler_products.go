package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vbonduro/salesdash/internal/apiclient"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	archived := r.URL.Query().Get("archived") == "true"

	catalog, err := s.catalog.Load(r.Context(), archived)
	if err != nil {
		http.Error(w, "failed to load products", http.StatusBadGateway)
		s.logger.Error("load catalog failed", zap.Bool("archived", archived), zap.Error(err))
		return
	}

	title := "Products"
	if archived {
		title = "Archived products"
	}
	if err := s.renderPage(w,
		map[string]any{"Title": title, "ActiveNav": "products", "Catalog": catalog},
		"base.html", "pages/products.html",
	); err != nil {
		s.logger.Error("render page failed", zap.Error(err))
	}
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := s.products.DeleteProduct(r.Context(), productID); err != nil {
		if apiclient.StatusCode(err) == http.StatusNotFound {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to delete product", http.StatusBadGateway)
		s.logger.Error("delete product failed", zap.Int64("product_id", productID), zap.Error(err))
		return
	}

	s.logger.Info("product deleted", zap.Int64("product_id", productID))
	w.Header().Set("HX-Redirect", "/products")
	w.WriteHeader(http.StatusOK)
}

// handleToggleArchive flips a product's archived state. When the API refuses
// with 409 Conflict the response is a confirmation offering the forced call,
// which is sent back with force=true.
func (s *Server) handleToggleArchive(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	force := r.FormValue("force") == "true"

	res, err := s.products.ToggleProductArchive(r.Context(), productID, force)
	if err != nil {
		var se *apiclient.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusConflict && !force {
			if err := s.renderPartial(w, "partials/archive_confirm.html",
				map[string]any{"ID": productID, "Detail": se.Detail()},
			); err != nil {
				s.logger.Error("render partial failed", zap.Error(err))
			}
			return
		}
		http.Error(w, "failed to toggle archive", http.StatusBadGateway)
		s.logger.Error("toggle archive failed",
			zap.Int64("product_id", productID),
			zap.Bool("force", force),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("product archive toggled",
		zap.Int64("product_id", productID),
		zap.Bool("archived", res.IsArchived),
		zap.Bool("force", force),
	)
	// The product has left the list it was shown in; send the user back to it.
	redirect := "/products"
	if !res.IsArchived {
		redirect = "/products?archived=true"
	}
	w.Header().Set("HX-Redirect", redirect)
	w.WriteHeader(http.StatusOK)
}

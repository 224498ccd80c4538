package inventory

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vbonduro/salesdash/internal/apiclient"
)

const (
	productsPath     = "inventory/products/"
	productTypesPath = "inventory/product-types/"
	brandsPath       = "inventory/brands/"
	materialsPath    = "inventory/materials/"
)

// ProductService is the resource client for the inventory endpoints. Every
// method issues exactly one request and returns the error the Doer reports
// without translating it.
type ProductService struct {
	api apiclient.Doer
}

func NewProductService(api apiclient.Doer) *ProductService {
	return &ProductService{api: api}
}

func (s *ProductService) FetchProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: productsPath}, &out)
	return out, err
}

func (s *ProductService) FetchTypes(ctx context.Context) ([]ProductType, error) {
	var out []ProductType
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: productTypesPath}, &out)
	return out, err
}

func (s *ProductService) FetchBrands(ctx context.Context) ([]Brand, error) {
	var out []Brand
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: brandsPath}, &out)
	return out, err
}

func (s *ProductService) FetchMaterials(ctx context.Context) ([]Material, error) {
	var out []Material
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: materialsPath}, &out)
	return out, err
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.api.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/inventory/products/%d/", id),
	}, nil)
}

type toggleArchiveBody struct {
	ForceArchive bool `json:"force_archive"`
}

// ToggleProductArchive flips the archived state of a product. forceArchive
// asks the server to archive even when its own guard would refuse; what the
// guard checks is decided server side.
func (s *ProductService) ToggleProductArchive(ctx context.Context, id int64, forceArchive bool) (*ArchiveResult, error) {
	out := &ArchiveResult{}
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/inventory/products/%d/toggle-archive/", id),
		Body:   toggleArchiveBody{ForceArchive: forceArchive},
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductService) FetchArchivedProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   productsPath,
		Query:  url.Values{"archived": {"true"}},
	}, &out)
	return out, err
}

package sales

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vbonduro/salesdash/internal/apiclient"
)

// SalesService is the resource client for the sales endpoints.
type SalesService struct {
	api apiclient.Doer
}

func NewSalesService(api apiclient.Doer) *SalesService {
	return &SalesService{api: api}
}

func (s *SalesService) ListSales(ctx context.Context, filters SalesFilters) (*SaleList, error) {
	out := &SaleList{}
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   "sales/",
		Query:  filters.Query(),
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// maxListPages bounds ListAllSales against a listing that never ends.
const maxListPages = 1000

type saleLister interface {
	ListSales(ctx context.Context, filters SalesFilters) (*SaleList, error)
}

// ListAllSales follows the listing from its first page until the server
// reports no next page. filters.Page is ignored.
func ListAllSales(ctx context.Context, src saleLister, filters SalesFilters) ([]SaleListItem, error) {
	var out []SaleListItem
	for page := 1; ; page++ {
		if page > maxListPages {
			return nil, fmt.Errorf("sales listing exceeds %d pages", maxListPages)
		}
		filters.Page = page
		list, err := src.ListSales(ctx, filters)
		if err != nil {
			return nil, err
		}
		out = append(out, list.Results...)
		if list.Next == nil || len(list.Results) == 0 {
			return out, nil
		}
	}
}

func (s *SalesService) GetSale(ctx context.Context, id int64) (*Sale, error) {
	out := &Sale{}
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("sales/%d/", id),
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SalesService) FetchStats(ctx context.Context, filters SalesFilters) (*SalesStats, error) {
	out := &SalesStats{}
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   "sales/stats/",
		Query:  filters.Query(),
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SalesService) QuickSale(ctx context.Context, req QuickSaleRequest) (*QuickSaleResponse, error) {
	out := &QuickSaleResponse{}
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   "sales/quick-sale/",
		Body:   req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

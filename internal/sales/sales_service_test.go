package sales

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vbonduro/salesdash/internal/apiclient"
	"github.com/vbonduro/salesdash/internal/apiclient/mocks"
)

func TestListSalesSendsFilters(t *testing.T) {
	doer := new(mocks.MockDoer)
	doer.On("Do", mock.Anything, apiclient.Request{
		Method: http.MethodGet,
		Path:   "sales/",
		Query:  url.Values{"status": {"pending"}},
	}, mock.AnythingOfType("*sales.SaleList")).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*SaleList)
			out.Count = 1
			out.Results = []SaleListItem{{ID: 3, Customer: "Ada"}}
		}).
		Return(nil).Once()

	list, err := NewSalesService(doer).ListSales(context.Background(), SalesFilters{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "Ada", list.Results[0].Customer)
	doer.AssertExpectations(t)
}

func TestGetSalePath(t *testing.T) {
	doer := new(mocks.MockDoer)
	doer.On("Do", mock.Anything, apiclient.Request{Method: http.MethodGet, Path: "sales/12/"}, mock.Anything).
		Return(nil).Once()

	_, err := NewSalesService(doer).GetSale(context.Background(), 12)

	require.NoError(t, err)
	doer.AssertExpectations(t)
}

func TestSalesServiceErrorsPassThrough(t *testing.T) {
	apiErr := &apiclient.StatusError{StatusCode: http.StatusBadGateway}
	doer := new(mocks.MockDoer)
	doer.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(apiErr)
	svc := NewSalesService(doer)

	_, err := svc.GetSale(context.Background(), 1)
	assert.Same(t, apiErr, err)

	_, err = svc.FetchStats(context.Background(), SalesFilters{})
	assert.Same(t, apiErr, err)

	_, err = svc.ListSales(context.Background(), SalesFilters{})
	assert.Same(t, apiErr, err)

	_, err = svc.QuickSale(context.Background(), QuickSaleRequest{ProductID: 1, Quantity: 1})
	assert.Same(t, apiErr, err)
}

func TestSalesServiceOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/sales/stats/":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"total_sales":    4,
				"total_revenue":  "1234.50",
				"total_profit":   "400.00",
				"avg_profit_pct": 32.4,
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/sales/quick-sale/":
			var req map[string]any
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["product_id"] != float64(8) || req["quantity"] != float64(2) {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"sale_id": 99, "total": "40.00", "profit": "12.00", "message": "Sale recorded",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewSalesService(apiclient.New(server.URL+"/api", 5*time.Second, zaptest.NewLogger(t)))

	stats, err := svc.FetchStats(context.Background(), SalesFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalSales)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(stats.TotalRevenue))

	price := decimal.RequireFromString("20.00")
	resp, err := svc.QuickSale(context.Background(), QuickSaleRequest{
		ProductID: 8,
		Quantity:  2,
		UnitPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.SaleID)
	assert.Equal(t, "Sale recorded", resp.Message)
}

type pagedLister struct {
	pages []*SaleList
	err   error
	asked []SalesFilters
}

func (p *pagedLister) ListSales(_ context.Context, filters SalesFilters) (*SaleList, error) {
	p.asked = append(p.asked, filters)
	if filters.Page > len(p.pages) {
		return nil, p.err
	}
	return p.pages[filters.Page-1], nil
}

func TestListAllSalesFollowsNext(t *testing.T) {
	next := "http://api/sales/?page=2"
	src := &pagedLister{pages: []*SaleList{
		{Count: 3, Next: &next, Results: []SaleListItem{{ID: 1}, {ID: 2}}},
		{Count: 3, Results: []SaleListItem{{ID: 3}}},
	}}

	items, err := ListAllSales(context.Background(), src, SalesFilters{Status: "completed", Page: 5})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(items))
	require.Len(t, src.asked, 2)
	assert.Equal(t, 1, src.asked[0].Page)
	assert.Equal(t, 2, src.asked[1].Page)
	assert.Equal(t, "completed", src.asked[1].Status)
}

func TestListAllSalesSinglePage(t *testing.T) {
	src := &pagedLister{pages: []*SaleList{{Count: 1, Results: []SaleListItem{{ID: 7}}}}}

	items, err := ListAllSales(context.Background(), src, SalesFilters{})

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids(items))
	assert.Len(t, src.asked, 1)
}

func TestListAllSalesStopsOnEmptyPage(t *testing.T) {
	next := "http://api/sales/?page=2"
	src := &pagedLister{pages: []*SaleList{{Count: 0, Next: &next}}}

	items, err := ListAllSales(context.Background(), src, SalesFilters{})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Len(t, src.asked, 1)
}

func TestListAllSalesPageError(t *testing.T) {
	next := "http://api/sales/?page=2"
	boom := errors.New("page 2 unavailable")
	src := &pagedLister{
		pages: []*SaleList{{Count: 4, Next: &next, Results: []SaleListItem{{ID: 1}}}},
		err:   boom,
	}

	items, err := ListAllSales(context.Background(), src, SalesFilters{})

	assert.Nil(t, items)
	assert.ErrorIs(t, err, boom)
}

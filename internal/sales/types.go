package sales

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type SaleItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Profit      decimal.Decimal `json:"profit"`
}

type Sale struct {
	ID          int64           `json:"id"`
	Customer    string          `json:"customer"`
	Status      string          `json:"status"`
	Items       []SaleItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Profit      decimal.Decimal `json:"profit"`
	ProfitPct   float64         `json:"profit_pct"`
	NeedsReview bool            `json:"needs_review"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListItem is the row shape returned by the sales listing.
type SaleListItem struct {
	ID          int64           `json:"id"`
	Customer    string          `json:"customer"`
	ItemCount   int             `json:"item_count"`
	Total       decimal.Decimal `json:"total"`
	Profit      decimal.Decimal `json:"profit"`
	ProfitPct   float64         `json:"profit_pct"`
	NeedsReview bool            `json:"needs_review"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleList is one page of the sales listing.
type SaleList struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []SaleListItem `json:"results"`
}

type SalesStats struct {
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	AvgProfitPct float64         `json:"avg_profit_pct"`
}

// QuickSaleRequest records a one-item sale. A nil UnitPrice lets the server
// charge the product's list price.
type QuickSaleRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type QuickSaleResponse struct {
	SaleID  int64           `json:"sale_id"`
	Total   decimal.Decimal `json:"total"`
	Profit  decimal.Decimal `json:"profit"`
	Message string          `json:"message"`
}

// SalesFilters narrows the sales listing and stats. Zero fields are not sent.
type SalesFilters struct {
	Search      string
	Status      string
	DateFrom    *time.Time
	DateTo      *time.Time
	NeedsReview *bool
	Page        int
	PageSize    int
}

const dateLayout = "2006-01-02"

// Query encodes the set fields as API query parameters.
func (f SalesFilters) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DateFrom != nil {
		q.Set("date_from", f.DateFrom.Format(dateLayout))
	}
	if f.DateTo != nil {
		q.Set("date_to", f.DateTo.Format(dateLayout))
	}
	if f.NeedsReview != nil {
		q.Set("needs_review", strconv.FormatBool(*f.NeedsReview))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return q
}

// ParseFilters reads filters from page query parameters, using the same
// names the API expects. Malformed values are ignored.
func ParseFilters(q url.Values) SalesFilters {
	f := SalesFilters{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}
	if t, err := time.Parse(dateLayout, q.Get("date_from")); err == nil {
		f.DateFrom = &t
	}
	if t, err := time.Parse(dateLayout, q.Get("date_to")); err == nil {
		f.DateTo = &t
	}
	if b, err := strconv.ParseBool(q.Get("needs_review")); err == nil {
		f.NeedsReview = &b
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		f.Page = n
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 {
		f.PageSize = n
	}
	return f
}

package sales

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TopN is how many sales the ranked dashboard cards show; it matches the
// number of rank badges.
const TopN = 3

// salesSource is the subset of SalesService that Dashboard requires.
type salesSource interface {
	ListSales(ctx context.Context, filters SalesFilters) (*SaleList, error)
	FetchStats(ctx context.Context, filters SalesFilters) (*SalesStats, error)
}

// DashboardView is everything the sales dashboard page renders.
type DashboardView struct {
	Filters      SalesFilters
	Stats        *SalesStats
	Sales        *SaleList
	TopProfitUSD []SaleListItem
	TopProfitPct []SaleListItem
	ReviewNeeded []SaleListItem
}

type Dashboard struct {
	source salesSource
	logger *zap.Logger
}

func NewDashboard(source salesSource, logger *zap.Logger) *Dashboard {
	return &Dashboard{source: source, logger: logger}
}

// Load fetches the listing and the stats for filters in parallel and derives
// the ranked cards from the listing.
func (d *Dashboard) Load(ctx context.Context, filters SalesFilters) (*DashboardView, error) {
	var (
		list  *SaleList
		stats *SalesStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = d.source.ListSales(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = d.source.FetchStats(gctx, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &DashboardView{
		Filters:      filters,
		Stats:        stats,
		Sales:        list,
		TopProfitUSD: TopByProfit(list.Results, TopN),
		TopProfitPct: TopByProfitPct(list.Results, TopN),
		ReviewNeeded: NeedingReview(list.Results),
	}

	d.logger.Debug("dashboard loaded",
		zap.Int("results", len(list.Results)),
		zap.Int("count", list.Count),
		zap.Int("review_needed", len(view.ReviewNeeded)),
	)
	return view, nil
}

// TopByProfit returns at most n sales ordered by absolute profit, highest
// first. Ties keep their input order. The input is not modified.
func TopByProfit(items []SaleListItem, n int) []SaleListItem {
	return topBy(items, n, func(a, b SaleListItem) int {
		return b.Profit.Cmp(a.Profit)
	})
}

// TopByProfitPct is TopByProfit ordered by profit percentage.
func TopByProfitPct(items []SaleListItem, n int) []SaleListItem {
	return topBy(items, n, func(a, b SaleListItem) int {
		switch {
		case a.ProfitPct > b.ProfitPct:
			return -1
		case a.ProfitPct < b.ProfitPct:
			return 1
		default:
			return 0
		}
	})
}

func topBy(items []SaleListItem, n int, cmp func(a, b SaleListItem) int) []SaleListItem {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmp)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// NeedingReview returns the sales flagged for review, in input order.
func NeedingReview(items []SaleListItem) []SaleListItem {
	var out []SaleListItem
	for _, it := range items {
		if it.NeedsReview {
			out = append(out, it)
		}
	}
	return out
}

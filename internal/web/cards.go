package web

import (
	"fmt"
	"html/template"

	"github.com/vbonduro/salesdash/internal/format"
	"github.com/vbonduro/salesdash/internal/sales"
	"github.com/vbonduro/salesdash/internal/theme"
	"github.com/vbonduro/salesdash/internal/ui"
)

const emptyCardNote = template.HTML(`<p class="text-sm text-gray-500">Nothing to show</p>`)

// dashboardCards lays out the four summary cards of the sales dashboard.
func dashboardCards(v *sales.DashboardView) ([]template.HTML, error) {
	statsRows, err := statRows(
		"Sales", fmt.Sprintf("%d", v.Stats.TotalSales),
		"Revenue", format.FormatMoney(v.Stats.TotalRevenue),
		"Profit", format.FormatMoney(v.Stats.TotalProfit),
		"Avg. margin", format.FormatPercentage(v.Stats.AvgProfitPct),
	)
	if err != nil {
		return nil, err
	}

	topUSD, err := rankedRows(v.TopProfitUSD, func(it sales.SaleListItem) string {
		return format.FormatMoney(it.Profit)
	})
	if err != nil {
		return nil, err
	}

	topPct, err := rankedRows(v.TopProfitPct, func(it sales.SaleListItem) string {
		return format.FormatPercentage(it.ProfitPct)
	})
	if err != nil {
		return nil, err
	}

	var review []template.HTML
	for _, it := range v.ReviewNeeded {
		row, err := ui.StatRow(saleLabel(it), format.FormatMoney(it.Total))
		if err != nil {
			return nil, err
		}
		review = append(review, row)
	}

	cards := []struct {
		title string
		card  theme.SummaryCard
		rows  []template.HTML
	}{
		{"Stats", theme.CardStats, statsRows},
		{"Top profit ($)", theme.CardTopProfitUSD, topUSD},
		{"Top profit (%)", theme.CardTopProfitPct, topPct},
		{"Review needed", theme.CardReviewNeeded, review},
	}

	out := make([]template.HTML, 0, len(cards))
	for _, c := range cards {
		rows := c.rows
		if len(rows) == 0 {
			rows = []template.HTML{emptyCardNote}
		}
		html, err := ui.SummaryCard(c.title, c.card.Background(), rows...)
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}

// statRows renders label/value pairs.
func statRows(pairs ...string) ([]template.HTML, error) {
	rows := make([]template.HTML, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		row, err := ui.StatRow(pairs[i], pairs[i+1])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rankedRows(items []sales.SaleListItem, value func(sales.SaleListItem) string) ([]template.HTML, error) {
	rows := make([]template.HTML, 0, len(items))
	for i, it := range items {
		// Only the podium gets a badge; loaders never return more than TopN.
		if i >= len(theme.RankColors) {
			break
		}
		row, err := ui.RankedRow(i, saleLabel(it), value(it))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func saleLabel(it sales.SaleListItem) string {
	if it.Customer == "" {
		return fmt.Sprintf("#%d", it.ID)
	}
	return fmt.Sprintf("#%d %s", it.ID, it.Customer)
}

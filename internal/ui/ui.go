// Package ui holds the presentation primitives shared by the pages. Each
// primitive is a pure function of its arguments that returns escaped HTML.
package ui

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/salesdash/internal/format"
	"github.com/vbonduro/salesdash/internal/theme"
)

//go:embed components/*.html
var componentsFS embed.FS

var components = template.Must(template.ParseFS(componentsFS, "components/*.html"))

// StatRow renders a label on the left and its value on the right.
func StatRow(label, value string) (template.HTML, error) {
	return render("stat_row", struct{ Label, Value string }{label, value})
}

// SummaryCard renders a titled card with the given background class around
// children. Children are inserted as-is, so they must already be safe HTML.
func SummaryCard(title, background string, children ...template.HTML) (template.HTML, error) {
	return render("summary_card", struct {
		Title      string
		Background string
		Children   []template.HTML
	}{title, background, children})
}

// RankedRow is a StatRow preceded by a place badge. rank is zero-based and
// must be covered by theme.RankColors.
func RankedRow(rank int, label, value string) (template.HTML, error) {
	badge, err := theme.RankColor(rank)
	if err != nil {
		return "", err
	}
	row, err := StatRow(label, value)
	if err != nil {
		return "", err
	}
	return render("ranked_row", struct {
		Badge string
		Place int
		Row   template.HTML
	}{badge, rank + 1, row})
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := components.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Funcs returns the template functions page templates use for laying out
// and formatting values.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"statRow":     StatRow,
		"summaryCard": SummaryCard,
		"rankedRow":   RankedRow,
		"currency":    format.FormatCurrency,
		"money":       format.FormatMoney,
		"percent":     format.FormatPercentage,
		"rankColor":   theme.RankColor,
		"cardBackground": func(key string) (string, error) {
			c, err := theme.ParseSummaryCard(key)
			if err != nil {
				return "", err
			}
			return c.Background(), nil
		},
		"signColor": theme.SignColor,
		"moneySignColor": func(d decimal.Decimal) string {
			return theme.SignColor(d.InexactFloat64())
		},
	}
}

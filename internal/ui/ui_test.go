package ui

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatRow(t *testing.T) {
	html, err := StatRow("Revenue", "$1,234.50")

	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "Revenue")
	assert.Contains(t, s, "$1,234.50")
	assert.Contains(t, s, "text-gray-500")
	assert.Contains(t, s, "font-semibold")
	assert.Less(t, strings.Index(s, "Revenue"), strings.Index(s, "$1,234.50"), "label renders before value")
}

func TestStatRowEscapesInput(t *testing.T) {
	html, err := StatRow("<script>alert(1)</script>", "a & b")

	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
	assert.Contains(t, string(html), "a &amp; b")
}

func TestStatRowEmptyInputs(t *testing.T) {
	_, err := StatRow("", "")
	assert.NoError(t, err)
}

func TestSummaryCard(t *testing.T) {
	row, err := StatRow("Sales", "12")
	require.NoError(t, err)

	html, err := SummaryCard("Stats", "bg-blue-50", row, template.HTML("<p>extra</p>"))

	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "Stats")
	assert.Contains(t, s, "bg-blue-50")
	assert.Contains(t, s, string(row))
	assert.Contains(t, s, "<p>extra</p>")
}

func TestSummaryCardNoChildren(t *testing.T) {
	html, err := SummaryCard("Review needed", "bg-orange-50")

	require.NoError(t, err)
	assert.Contains(t, string(html), "Review needed")
}

func TestFuncsInPageTemplate(t *testing.T) {
	tmpl := template.Must(template.New("page").Funcs(Funcs()).Parse(
		`{{summaryCard "Stats" (cardBackground "stats") (statRow "Revenue" (money .Revenue)) (statRow "Margin" (percent .Margin))}}` +
			`<span class="{{rankColor 0}}">1</span><span class="{{signColor .Margin}}"></span>`,
	))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Revenue": decimal.RequireFromString("1234.5"),
		"Margin":  -1.05,
	})

	require.NoError(t, err)
	s := buf.String()
	assert.Contains(t, s, "bg-blue-50")
	assert.Contains(t, s, "$1,234.50")
	assert.Contains(t, s, "-1.1%")
	assert.Contains(t, s, "bg-yellow-400")
	assert.Contains(t, s, "text-red-600")
}

func TestFuncsRejectUnknownCard(t *testing.T) {
	tmpl := template.Must(template.New("page").Funcs(Funcs()).Parse(`{{cardBackground "bogus"}}`))

	err := tmpl.Execute(&bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestFuncsRejectOutOfRangeRank(t *testing.T) {
	tmpl := template.Must(template.New("page").Funcs(Funcs()).Parse(`{{rankColor 3}}`))

	err := tmpl.Execute(&bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestRankedRow(t *testing.T) {
	html, err := RankedRow(0, "#12 Ada", "$300.00")

	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "bg-yellow-400")
	assert.Contains(t, s, ">1<")
	assert.Contains(t, s, "#12 Ada")
	assert.Contains(t, s, "$300.00")
}

func TestRankedRowOutOfRange(t *testing.T) {
	_, err := RankedRow(3, "#1", "$1.00")
	assert.Error(t, err)
}

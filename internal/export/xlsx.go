// Package export writes sales listings as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vbonduro/salesdash/internal/sales"
)

const SalesSheet = "Sales"

var salesHeader = []any{"ID", "Customer", "Items", "Total", "Profit", "Profit %", "Needs review", "Created"}

// WriteSalesXLSX writes items to w as a workbook with a single Sales sheet.
// Money columns are numbers so the spreadsheet can sum them.
func WriteSalesXLSX(w io.Writer, items []sales.SaleListItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SalesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SalesSheet, "A1", &salesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", i+2, err)
		}
		row := []any{
			it.ID,
			it.Customer,
			it.ItemCount,
			it.Total.InexactFloat64(),
			it.Profit.InexactFloat64(),
			it.ProfitPct,
			it.NeedsReview,
			it.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(SalesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sale %d: %w", it.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

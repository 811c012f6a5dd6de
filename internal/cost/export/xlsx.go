// Package export renders cost listings as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"landscape/internal/cost/models"
)

const sheetName = "Application Costs"

var headers = []any{"Application ID", "Application", "Asset Code", "Year", "Kind", "Amount"}

// WriteApplicationCosts writes costs as a single-sheet xlsx workbook.
func WriteApplicationCosts(w io.Writer, costs []models.ApplicationCost) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, c := range costs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []any{c.Application.ID, c.Name, c.AssetCode, c.Cost.Year, c.Cost.Kind, c.Cost.Amount}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

package records

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cropwise/entities"
)

const (
	SheetRecords    = "Records"
	SheetActivities = "Activities"
	SheetProduction = "Production"
)

// WriteWorkbook writes one sheet per collection, header row first.
func WriteWorkbook(w io.Writer, recs []entities.FarmRecord, acts []entities.FarmActivity, prods []entities.FarmProduction) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), SheetRecords); err != nil {
		return err
	}
	for _, s := range []string{SheetActivities, SheetProduction} {
		if _, err := x.NewSheet(s); err != nil {
			return err
		}
	}

	rows := [][]any{{"Date", "Type", "Description", "Amount", "Category", "Supplier", "Customer", "Payment Method"}}
	for _, r := range recs {
		rows = append(rows, []any{r.Date, r.Type, r.Description, r.Amount, r.Category, r.Supplier, r.Customer, r.PaymentMethod})
	}
	if err := writeRows(x, SheetRecords, rows); err != nil {
		return err
	}

	rows = [][]any{{"Date", "Activity", "Field", "Area (ha)", "Cost", "Labor Hours", "Details"}}
	for _, a := range acts {
		var cost, hours any
		if a.Cost != nil {
			cost = *a.Cost
		}
		if a.LaborHours != nil {
			hours = *a.LaborHours
		}
		rows = append(rows, []any{a.Date, a.Activity, a.Field, a.Area, cost, hours, a.Details})
	}
	if err := writeRows(x, SheetActivities, rows); err != nil {
		return err
	}

	rows = [][]any{{"Crop", "Planting Date", "Harvest Date", "Area (ha)", "Yield (kg)", "Revenue", "Cost", "Profit"}}
	for _, p := range prods {
		rows = append(rows, []any{p.Crop, p.PlantingDate, p.HarvestDate, p.Area, p.Yield, p.Revenue, p.Cost, p.Revenue - p.Cost})
	}
	if err := writeRows(x, SheetProduction, rows); err != nil {
		return err
	}

	_, err := x.WriteTo(w)
	return err
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// Package countrysheet exports the calling code table as a spreadsheet for
// the people maintaining back-office records by hand.
package countrysheet

import (
	"fmt"
	"io"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the worksheet containing the countries.
const Sheet = "Countries"

// Header is the first row of the worksheet.
var Header = []any{"Code", "Name", "Flag", "Region", "Calling Code", "Priority", "Default"}

// Write writes an XLSX workbook with one row per country in cs.
func Write(w io.Writer, cs []callingcode.Country) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(Sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SetSheetRow(Sheet, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, c := range cs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{c.Code, c.Name, c.Flag, c.Region, "+" + c.CallingCode, c.Priority, c.Default}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s: %w", c.Code, err)
		}
	}
	if err := f.SetColWidth(Sheet, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(Sheet, "D", "E", 16); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

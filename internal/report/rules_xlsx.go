// Package report renders computed pay rules as downloadable spreadsheets.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	RulesSheet      = "Pay Rules"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	noPenaltyLabel  = "Ordinary hours"
)

// RulesHeader is the first row of the rules sheet
var RulesHeader = []string{
	"Award Code",
	"Award Name",
	"Employment Type",
	"Level",
	"Classification",
	"Penalty",
	"Base Hourly Rate",
	"Multiplier",
	"Hourly Rate",
	"Weekly Rate",
	"Annual Rate",
	"Effective From",
	"Effective To",
	"Generation ID",
}

var columnWidths = []float64{12, 40, 16, 8, 30, 30, 16, 12, 14, 14, 14, 14, 14, 38}

// RuleRow is one computed rule flattened for export
type RuleRow struct {
	AwardCode           string
	AwardName           string
	EmploymentType      string
	ClassificationLevel int
	ClassificationName  string
	PenaltyName         string // empty for the no-penalty row
	BaseHourlyRate      decimal.Decimal
	Multiplier          decimal.Decimal
	HourlyRate          decimal.Decimal
	WeeklyRate          decimal.Decimal
	AnnualRate          decimal.Decimal
	EffectiveFrom       string
	EffectiveTo         string // empty while open-ended
	GenerationID        string
}

func (r RuleRow) values() []interface{} {
	penalty := r.PenaltyName
	if penalty == "" {
		penalty = noPenaltyLabel
	}
	return []interface{}{
		r.AwardCode,
		r.AwardName,
		r.EmploymentType,
		r.ClassificationLevel,
		r.ClassificationName,
		penalty,
		money(r.BaseHourlyRate),
		r.Multiplier.InexactFloat64(),
		money(r.HourlyRate),
		money(r.WeeklyRate),
		money(r.AnnualRate),
		r.EffectiveFrom,
		r.EffectiveTo,
		r.GenerationID,
	}
}

// WriteRulesWorkbook writes a single-sheet workbook with a bold header row
// followed by one row per rule, in the given order.
func WriteRulesWorkbook(w io.Writer, rows []RuleRow) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(RulesSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(RulesSheet, "A1", &RulesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(RulesHeader))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(RulesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(RulesSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.values()
		if err := f.SetSheetRow(RulesSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(RulesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

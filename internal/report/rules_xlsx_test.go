package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []RuleRow {
	return []RuleRow{
		{
			AwardCode:           "MA000004",
			AwardName:           "General Retail Industry Award",
			EmploymentType:      "FT",
			ClassificationLevel: 1,
			ClassificationName:  "Retail Employee Level 1",
			BaseHourlyRate:      decimal.RequireFromString("25.00"),
			Multiplier:          decimal.RequireFromString("1.00"),
			HourlyRate:          decimal.RequireFromString("25.00"),
			WeeklyRate:          decimal.RequireFromString("950.00"),
			AnnualRate:          decimal.RequireFromString("49400.00"),
			EffectiveFrom:       "2025-07-01",
			GenerationID:        "6f1f3c0e-8f6a-4b53-9a38-2b1f6d3b6a11",
		},
		{
			AwardCode:           "MA000004",
			AwardName:           "General Retail Industry Award",
			EmploymentType:      "FT",
			ClassificationLevel: 1,
			ClassificationName:  "Retail Employee Level 1",
			PenaltyName:         "Saturday",
			BaseHourlyRate:      decimal.RequireFromString("25.00"),
			Multiplier:          decimal.RequireFromString("1.50"),
			HourlyRate:          decimal.RequireFromString("37.50"),
			WeeklyRate:          decimal.RequireFromString("1425.00"),
			AnnualRate:          decimal.RequireFromString("74100.00"),
			EffectiveFrom:       "2025-07-01",
			EffectiveTo:         "2026-07-01",
			GenerationID:        "6f1f3c0e-8f6a-4b53-9a38-2b1f6d3b6a11",
		},
	}
}

func TestWriteRulesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRulesWorkbook(&buf, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{RulesSheet}, f.GetSheetList())

	rows, err := f.GetRows(RulesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, RulesHeader, rows[0])

	assert.Equal(t, "MA000004", rows[1][0])
	assert.Equal(t, noPenaltyLabel, rows[1][5])
	assert.Equal(t, "25", rows[1][8])

	assert.Equal(t, "Saturday", rows[2][5])
	assert.Equal(t, "1.5", rows[2][7])
	assert.Equal(t, "37.5", rows[2][8])
	assert.Equal(t, "1425", rows[2][9])
	assert.Equal(t, "2026-07-01", rows[2][12])
}

func TestWriteRulesWorkbook_HeaderIsBold(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRulesWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(RulesSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	rows, err := f.GetRows(RulesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

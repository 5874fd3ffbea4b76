package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/asifrahman/gradus/internal/scheduler"
)

// ToXLSX renders a plan as a spreadsheet: one header row, one row per
// valid session. Returns the file content and a suggested filename.
// Sessions with unresolvable timestamps are skipped, matching ICS export.
func ToXLSX(plan scheduler.Plan) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Study Plan"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("creating plan sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("creating header style: %w", err)
	}

	headers := []string{"Day", "Date", "Start", "End", "Session", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	_ = f.SetColWidth(sheet, "A", "D", 12)
	_ = f.SetColWidth(sheet, "E", "F", 40)

	row := 2
	for _, s := range plan.Sessions {
		if !s.Valid() {
			continue
		}
		values := []interface{}{
			s.Start.Format("Mon"),
			s.Start.Format("2006-01-02"),
			s.Start.Format("15:04"),
			s.End.Format("15:04"),
			s.Title,
			s.Description,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	if plan.Timezone != "" {
		cell, _ := excelize.CoordinatesToCellName(1, row+1)
		_ = f.SetCellValue(sheet, cell, "Times shown in "+plan.Timezone)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("writing plan workbook: %w", err)
	}

	filename := fmt.Sprintf("study-plan-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

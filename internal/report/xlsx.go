package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// XLSXContentType is the MIME type of RenderXLSX output.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	xlsxSheet = "Report"
)

// RenderXLSX rebuilds a stored CSV payload as a single-sheet workbook.
// Every column except store_id is written as a number.
func RenderXLSX(payload string) ([]byte, error) {
	records, err := csv.NewReader(strings.NewReader(payload)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse report payload: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := Columns
	if len(records) > 0 {
		header = records[0]
		records = records[1:]
	}
	for col, name := range header {
		if err := setCell(f, col, 1, name); err != nil {
			return nil, err
		}
	}

	for i, record := range records {
		row := i + 2
		for col, field := range record {
			var value interface{} = field
			if col > 0 {
				if n, err := strconv.ParseFloat(field, 64); err == nil {
					value = n
				}
			}
			if err := setCell(f, col, row, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Errorf("cell name for (%d,%d): %w", col+1, row, err)
	}
	if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

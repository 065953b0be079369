// server/internal/export/export.go

// Package export flattens growth logs into the administrative download
// formats. Both forms read the denormalized fields verbatim; nothing is
// re-derived from the parent collections.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/xuri/excelize/v2"
)

// Headers is the fixed CSV/XLSX column set, in order.
var Headers = []string{
	"plot_code", "tree_code", "survey_date", "height_m",
	"dbh_cm", "status", "flowering", "note",
}

// Row projects one growth log onto the export columns. Absent optional
// values become empty strings; flowering renders as yes/no; dbh_cm comes
// from the DBH child payload when present.
func Row(log models.GrowthLog) []interface{} {
	var heightM interface{} = ""
	if log.HeightM != nil {
		heightM = *log.HeightM
	}
	var dbhCm interface{} = ""
	if log.DbhData != nil {
		dbhCm = log.DbhData.DbhCm
	}
	flowering := "no"
	if log.Flowering {
		flowering = "yes"
	}
	return []interface{}{
		log.PlotCode,
		log.TreeCode,
		log.SurveyDate,
		heightM,
		dbhCm,
		string(log.Status),
		flowering,
		log.Note,
	}
}

// CSV renders the logs as UTF-8 with BOM, comma-separated, each field
// JSON-encoded (strings quoted, numbers bare). This is the exact format the
// legacy exporter produced, so downstream spreadsheets keep importing cleanly.
func CSV(logs []models.GrowthLog) string {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(Headers, ","))
	for _, log := range logs {
		b.WriteString("\n")
		fields := Row(log)
		for i, field := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			encoded, err := json.Marshal(field)
			if err != nil {
				encoded = []byte(`""`)
			}
			b.Write(encoded)
		}
	}
	return b.String()
}

// CSVFilename is growth_logs_<ISO date>.csv for today.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("growth_logs_%s.csv", now.Format("2006-01-02"))
}

// XLSXFilename is the spreadsheet counterpart of CSVFilename.
func XLSXFilename(now time.Time) string {
	return fmt.Sprintf("growth_logs_%s.xlsx", now.Format("2006-01-02"))
}

// XLSX writes the same projection as a single-sheet workbook.
func XLSX(logs []models.GrowthLog, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, log := range logs {
		for col, value := range Row(log) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

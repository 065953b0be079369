// server/internal/export/export_test.go
package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func sampleLog() models.GrowthLog {
	return models.GrowthLog{
		PlotCode:   "P01",
		TreeCode:   "P1A0101",
		SurveyDate: "2025-06-15",
		HeightM:    floatPtr(3.5),
		Status:     models.StatusAlive,
		Flowering:  true,
		Note:       "healthy, new leaves",
		DbhData:    &models.DbhData{DbhCm: 12.5},
	}
}

func TestCSVStartsWithBOM(t *testing.T) {
	out := CSV([]models.GrowthLog{sampleLog()})
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "export must carry a UTF-8 BOM")
}

func TestCSVHeaderRow(t *testing.T) {
	out := CSV(nil)
	assert.Equal(t, "\uFEFF"+"plot_code,tree_code,survey_date,height_m,dbh_cm,status,flowering,note", out)
}

func TestCSVRowEncoding(t *testing.T) {
	out := CSV([]models.GrowthLog{sampleLog()})
	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, `"P01","P1A0101","2025-06-15",3.5,12.5,"alive","yes","healthy, new leaves"`, lines[1])
}

func TestCSVAbsentOptionalsAreEmptyStrings(t *testing.T) {
	log := models.GrowthLog{
		PlotCode:   "P02",
		TreeCode:   "P2B0201",
		SurveyDate: "2025-06-15",
		Status:     models.StatusDead,
	}

	out := CSV([]models.GrowthLog{log})
	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	assert.Equal(t, `"P02","P2B0201","2025-06-15","","","dead","no",""`, lines[1])
}

func TestCSVFieldWithCommaStaysOneField(t *testing.T) {
	log := sampleLog()
	log.Note = "split top, leaning"

	out := CSV([]models.GrowthLog{log})
	assert.Contains(t, out, `"split top, leaning"`)
}

func TestRowDbhFromPayloadOnly(t *testing.T) {
	log := sampleLog()
	log.DbhData = nil
	log.BambooData = &models.BambooData{}

	row := Row(log)
	assert.Equal(t, "", row[4], "bamboo logs have no dbh_cm column value")
}

func TestExportFilenames(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "growth_logs_2025-06-15.csv", CSVFilename(now))
	assert.Equal(t, "growth_logs_2025-06-15.xlsx", XLSXFilename(now))
}

func TestXLSXWritesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := XLSX([]models.GrowthLog{sampleLog()}, &buf)

	assert.NoError(t, err)
	// XLSX files are zip archives, "PK" magic.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

// server/internal/api/handlers/export_handler.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/export"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Store database.Store
}

// ExportGrowthLogsCSV streams every growth log, newest survey first, in the
// legacy CSV format (UTF-8 BOM, JSON-quoted fields).
func (h *ExportHandler) ExportGrowthLogsCSV(c *gin.Context) {
	logs, err := h.Store.FetchAllGrowthLogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query growth logs"})
		return
	}
	if len(logs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No growth logs to export"})
		return
	}

	filename := export.CSVFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(logs)))
}

// ExportGrowthLogsXLSX serves the same projection as a workbook.
func (h *ExportHandler) ExportGrowthLogsXLSX(c *gin.Context) {
	logs, err := h.Store.FetchAllGrowthLogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query growth logs"})
		return
	}
	if len(logs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No growth logs to export"})
		return
	}

	var buf bytes.Buffer
	if err := export.XLSX(logs, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}

	filename := export.XLSXFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// server/internal/api/handlers/growth_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/socket"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/views"

	"github.com/gin-gonic/gin"
)

type GrowthHandler struct {
	Store database.Store
	Hub   *socket.Hub
}

// SubmitGrowthLogRequest carries the observation plus the denormalized
// snapshot of the already-loaded tree/plot/species/recorder, resolved by
// the submitting client before the survey form was opened.
type SubmitGrowthLogRequest struct {
	TreeID     string   `json:"tree_id" binding:"required"`
	SurveyDate string   `json:"survey_date" binding:"required"`
	RecorderID *string  `json:"recorder_id"`
	HeightM    *float64 `json:"height_m"`
	Status     *string  `json:"status"`
	Flowering  *bool    `json:"flowering"`
	Note       *string  `json:"note"`

	PlantCategory models.PlantCategory `json:"plant_category" binding:"required"`

	TreeCode       string `json:"tree_code"`
	TreeNumber     int    `json:"tree_number"`
	PlotID         string `json:"plot_id"`
	PlotCode       string `json:"plot_code"`
	PlotNameShort  string `json:"plot_name_short"`
	SpeciesCode    string `json:"species_code"`
	SpeciesNameTH  string `json:"species_name_th"`
	SpeciesNameSci string `json:"species_name_sci"`
	RecorderName   string `json:"recorder_name"`

	models.MeasurementInput
}

// SubmitGrowthLog inserts one survey observation with the snapshot embedded.
// Exactly one child payload is built, from the plant category alone; the
// parent plot's counters are not touched (they are client-maintained, see
// the plot handler). A store failure answers {success:false, message} so
// the client can offer a retry.
func (h *GrowthHandler) SubmitGrowthLog(c *gin.Context) {
	var req SubmitGrowthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	status := models.StatusAlive
	if req.Status != nil && *req.Status != "" {
		switch models.TreeStatus(*req.Status) {
		case models.StatusAlive, models.StatusDead, models.StatusMissing:
			status = models.TreeStatus(*req.Status)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "status must be alive, dead or missing"})
			return
		}
	}

	flowering := false
	if req.Flowering != nil {
		flowering = *req.Flowering
	}
	note := ""
	if req.Note != nil {
		note = *req.Note
	}

	log := models.GrowthLog{
		TreeID:     req.TreeID,
		SurveyDate: req.SurveyDate,
		RecorderID: req.RecorderID,
		HeightM:    req.HeightM,
		Status:     status,
		Flowering:  flowering,
		Note:       note,

		TreeCode:       req.TreeCode,
		TreeNumber:     req.TreeNumber,
		PlotID:         req.PlotID,
		PlotCode:       req.PlotCode,
		PlotNameShort:  req.PlotNameShort,
		SpeciesCode:    req.SpeciesCode,
		SpeciesNameTH:  req.SpeciesNameTH,
		SpeciesNameSci: req.SpeciesNameSci,
		PlantCategory:  req.PlantCategory,
		RecorderName:   req.RecorderName,

		CreatedAt: time.Now(),
	}

	if m := models.BuildMeasurement(req.PlantCategory, req.MeasurementInput); m != nil {
		m.Attach(&log)
	}

	id, err := h.Store.CreateGrowthLog(c.Request.Context(), &log)
	if err != nil {
		slog.Error("growth log insert failed", "tree", req.TreeID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save growth log"})
		return
	}
	log.ID = id

	if h.Hub != nil {
		h.Hub.Broadcast("growth_log_created", views.ToGrowthLogDetails(log))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// GetGrowthLogsByPlot lists a plot's logs, newest survey first, projected
// into the nested view shape.
func (h *GrowthHandler) GetGrowthLogsByPlot(c *gin.Context) {
	plotID := c.Param("id")

	logs, err := h.Store.FetchGrowthLogsByPlot(c.Request.Context(), plotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query growth logs"})
		return
	}

	details := make([]views.GrowthLogDetails, 0, len(logs))
	for _, l := range logs {
		details = append(details, views.ToGrowthLogDetails(l))
	}

	c.JSON(http.StatusOK, details)
}

// GetGrowthLogsByTree lists one tree's logs in survey order, for the
// growth chart.
func (h *GrowthHandler) GetGrowthLogsByTree(c *gin.Context) {
	treeID := c.Param("id")

	logs, err := h.Store.FetchGrowthLogsByTree(c.Request.Context(), treeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query growth logs"})
		return
	}

	details := make([]views.GrowthLogDetails, 0, len(logs))
	for _, l := range logs {
		details = append(details, views.ToGrowthLogDetails(l))
	}

	c.JSON(http.StatusOK, details)
}

// DeleteGrowthLog removes one observation. Logs are append-only otherwise;
// there is no update route.
func (h *GrowthHandler) DeleteGrowthLog(c *gin.Context) {
	logID := c.Param("id")

	if err := h.Store.DeleteGrowthLog(c.Request.Context(), logID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete growth log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Growth log deleted successfully"})
}

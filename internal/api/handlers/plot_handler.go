// server/internal/api/handlers/plot_handler.go
package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/views"

	"github.com/gin-gonic/gin"
)

type PlotHandler struct {
	Store database.Store
}

var plotCodePattern = regexp.MustCompile(`^P\d{2}$`)

// DerivePlotNameShort turns 'P01' into 'P1', 'P12' into 'P12'.
func DerivePlotNameShort(plotCode string) string {
	if !plotCodePattern.MatchString(plotCode) {
		return plotCode
	}
	n, err := strconv.Atoi(plotCode[1:])
	if err != nil {
		return plotCode
	}
	return "P" + strconv.Itoa(n)
}

type CreatePlotRequest struct {
	PlotCode        string   `json:"plot_code" binding:"required"`
	OwnerName       string   `json:"owner_name" binding:"required"`
	GroupNumber     int      `json:"group_number"`
	AreaSqM         *float64 `json:"area_sq_m"`
	Tambon          *string  `json:"tambon"`
	ElevationM      *float64 `json:"elevation_m"`
	BoundaryGeoJSON *string  `json:"boundary_geojson"`
	Note            *string  `json:"note"`
}

// CreatePlot registers a new planting area. plot_code is 'P' plus two
// digits and must be unique.
func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var req CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !plotCodePattern.MatchString(req.PlotCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plot_code must be 'P' followed by two digits"})
		return
	}

	existing, err := h.Store.FetchPlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for plot"})
		return
	}
	for _, p := range existing {
		if p.PlotCode == req.PlotCode {
			c.JSON(http.StatusConflict, gin.H{"error": "Plot with this code already exists"})
			return
		}
	}

	newPlot := models.Plot{
		PlotCode:        req.PlotCode,
		NameShort:       DerivePlotNameShort(req.PlotCode),
		OwnerName:       req.OwnerName,
		GroupNumber:     req.GroupNumber,
		AreaSqM:         req.AreaSqM,
		Tambon:          req.Tambon,
		ElevationM:      req.ElevationM,
		BoundaryGeoJSON: req.BoundaryGeoJSON,
		Note:            req.Note,
		CreatedAt:       time.Now(),
	}

	id, err := h.Store.CreatePlot(c.Request.Context(), &newPlot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plot"})
		return
	}
	newPlot.ID = id

	c.JSON(http.StatusCreated, newPlot)
}

// GetAllPlots lists plots ordered by plot_code, each with its survival
// summary attached.
func (h *PlotHandler) GetAllPlots(c *gin.Context) {
	plots, err := h.Store.FetchPlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plots"})
		return
	}

	summaries := make([]views.PlotSummary, 0, len(plots))
	for _, p := range plots {
		summaries = append(summaries, views.ToPlotSummary(p))
	}

	c.JSON(http.StatusOK, summaries)
}

// GetPlotByID returns one plot with its survival summary.
func (h *PlotHandler) GetPlotByID(c *gin.Context) {
	plotID := c.Param("id")

	plot, err := h.Store.FetchPlot(c.Request.Context(), plotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plot"})
		return
	}
	if plot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
		return
	}

	c.JSON(http.StatusOK, views.ToPlotSummary(*plot))
}

type UpdatePlotRequest struct {
	OwnerName       *string  `json:"owner_name"`
	GroupNumber     *int     `json:"group_number"`
	AreaSqM         *float64 `json:"area_sq_m"`
	Tambon          *string  `json:"tambon"`
	ElevationM      *float64 `json:"elevation_m"`
	BoundaryGeoJSON *string  `json:"boundary_geojson"`
	Note            *string  `json:"note"`
	TreeCount       *int     `json:"tree_count"`
	AliveCount      *int     `json:"alive_count"`
}

// UpdatePlot patches plot fields. tree_count/alive_count are accepted here
// because the submitting client is the only thing that maintains them; the
// server never recomputes denormalized counts.
func (h *PlotHandler) UpdatePlot(c *gin.Context) {
	plotID := c.Param("id")

	var req UpdatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.UpdatePlot(c.Request.Context(), plotID, database.PlotUpdate{
		OwnerName:       req.OwnerName,
		GroupNumber:     req.GroupNumber,
		AreaSqM:         req.AreaSqM,
		Tambon:          req.Tambon,
		ElevationM:      req.ElevationM,
		BoundaryGeoJSON: req.BoundaryGeoJSON,
		Note:            req.Note,
		TreeCount:       req.TreeCount,
		AliveCount:      req.AliveCount,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plot updated successfully"})
}

// DeletePlot removes a plot document. Admin correction only; trees and
// logs under it are left for a separate cleanup pass.
func (h *PlotHandler) DeletePlot(c *gin.Context) {
	plotID := c.Param("id")

	if err := h.Store.DeletePlot(c.Request.Context(), plotID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plot deleted successfully"})
}

// server/internal/api/handlers/tree_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/views"

	"github.com/gin-gonic/gin"
)

type TreeHandler struct {
	Store database.Store
}

type CreateTreeRequest struct {
	PlotID      string   `json:"plot_id" binding:"required"`
	SpeciesID   string   `json:"species_id" binding:"required"`
	TreeNumber  int      `json:"tree_number" binding:"required,min=1"`
	TagLabel    *string  `json:"tag_label"`
	RowMain     *string  `json:"row_main"`
	RowSub      *string  `json:"row_sub"`
	UtmX        *float64 `json:"utm_x"`
	UtmY        *float64 `json:"utm_y"`
	GridSpacing *float64 `json:"grid_spacing"`
	Note        *string  `json:"note"`
}

// CreateTree registers one tree during plot setup. The tree code encodes
// plot, species and sequence ('P1' + 'A01' + '01' -> 'P1A0101'), and the
// species/plot snapshot is denormalized onto the document once, here.
func (h *TreeHandler) CreateTree(c *gin.Context) {
	var req CreateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	plot, err := h.Store.FetchPlot(ctx, req.PlotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plot"})
		return
	}
	if plot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
		return
	}

	species, err := h.Store.FetchSpeciesByID(ctx, req.SpeciesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve species"})
		return
	}
	if species == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found"})
		return
	}

	treeCode := fmt.Sprintf("%s%s%02d", plot.NameShort, species.SpeciesCode, req.TreeNumber)

	existing, err := h.Store.FetchTreeByCode(ctx, treeCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for tree"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Tree with this code already exists"})
		return
	}

	nameSci := ""
	if species.NameSci != nil {
		nameSci = *species.NameSci
	}

	newTree := models.Tree{
		TreeCode:    treeCode,
		PlotID:      plot.ID,
		SpeciesID:   species.ID,
		TreeNumber:  req.TreeNumber,
		TagLabel:    req.TagLabel,
		RowMain:     req.RowMain,
		RowSub:      req.RowSub,
		UtmX:        req.UtmX,
		UtmY:        req.UtmY,
		GridSpacing: req.GridSpacing,
		Note:        req.Note,

		SpeciesCode:     species.SpeciesCode,
		SpeciesNameTH:   species.NameTH,
		SpeciesNameSci:  nameSci,
		SpeciesHexColor: species.HexColor,
		PlantCategory:   species.PlantCategory,
		PlotCode:        plot.PlotCode,
		PlotNameShort:   plot.NameShort,
		PlotOwnerName:   plot.OwnerName,

		CreatedAt: time.Now(),
	}

	id, err := h.Store.CreateTree(ctx, &newTree)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tree"})
		return
	}
	newTree.ID = id

	c.JSON(http.StatusCreated, views.ToTreeDetails(newTree))
}

// GetTreesByPlot lists a plot's trees ordered by tree_number, with map
// positions attached.
func (h *TreeHandler) GetTreesByPlot(c *gin.Context) {
	plotID := c.Param("id")

	trees, err := h.Store.FetchTreesByPlot(c.Request.Context(), plotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query trees"})
		return
	}

	details := make([]views.TreeDetails, 0, len(trees))
	for _, t := range trees {
		details = append(details, views.ToTreeDetails(t))
	}

	c.JSON(http.StatusOK, details)
}

// GetTreeByCode looks up one tree by its exact tree_code.
func (h *TreeHandler) GetTreeByCode(c *gin.Context) {
	treeCode := c.Param("code")

	tree, err := h.Store.FetchTreeByCode(c.Request.Context(), treeCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tree"})
		return
	}
	if tree == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}

	c.JSON(http.StatusOK, views.ToTreeDetails(*tree))
}

type UpdateTreeRequest struct {
	TagLabel    *string  `json:"tag_label"`
	RowMain     *string  `json:"row_main"`
	RowSub      *string  `json:"row_sub"`
	UtmX        *float64 `json:"utm_x"`
	UtmY        *float64 `json:"utm_y"`
	GridSpacing *float64 `json:"grid_spacing"`
	Note        *string  `json:"note"`
}

// UpdateTree patches position and label fields. The code and the
// denormalized snapshot are fixed at creation.
func (h *TreeHandler) UpdateTree(c *gin.Context) {
	treeID := c.Param("id")

	var req UpdateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.UpdateTree(c.Request.Context(), treeID, database.TreeUpdate{
		TagLabel:    req.TagLabel,
		RowMain:     req.RowMain,
		RowSub:      req.RowSub,
		UtmX:        req.UtmX,
		UtmY:        req.UtmY,
		GridSpacing: req.GridSpacing,
		Note:        req.Note,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tree"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tree updated successfully"})
}

// DeleteTree removes a tree document (admin correction).
func (h *TreeHandler) DeleteTree(c *gin.Context) {
	treeID := c.Param("id")

	if err := h.Store.DeleteTree(c.Request.Context(), treeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tree"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tree deleted successfully"})
}

// server/internal/api/handlers/species_handler.go
package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/gin-gonic/gin"
)

type SpeciesHandler struct {
	Store database.Store
}

var (
	speciesCodePattern = regexp.MustCompile(`^[A-Z]\d{2}$`)
	hexColorPattern    = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// normalizeHexColor stores colors in the '#rrggbb' form the map client
// renders; bare 6-digit input gains the prefix.
func normalizeHexColor(hex string) string {
	if strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}

// GetAllSpecies lists the catalog ordered by species_code.
func (h *SpeciesHandler) GetAllSpecies(c *gin.Context) {
	species, err := h.Store.FetchSpecies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query species"})
		return
	}
	if species == nil {
		species = []models.Species{}
	}
	c.JSON(http.StatusOK, species)
}

type CreateSpeciesRequest struct {
	SpeciesCode   string               `json:"species_code" binding:"required"`
	SpeciesGroup  string               `json:"species_group" binding:"required"`
	GroupLabel    string               `json:"group_label" binding:"required"`
	PlantCategory models.PlantCategory `json:"plant_category" binding:"required"`
	NameTH        string               `json:"name_th" binding:"required"`
	NameEN        *string              `json:"name_en"`
	NameSci       *string              `json:"name_sci"`
	HexColor      string               `json:"hex_color" binding:"required"`
}

// CreateSpecies adds a catalog entry (admin).
func (h *SpeciesHandler) CreateSpecies(c *gin.Context) {
	var req CreateSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !speciesCodePattern.MatchString(req.SpeciesCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "species_code must be a letter followed by two digits"})
		return
	}
	if !hexColorPattern.MatchString(req.HexColor) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hex_color must be 6 hex digits, optionally '#'-prefixed"})
		return
	}
	switch req.PlantCategory {
	case models.CategoryForest, models.CategoryRubber, models.CategoryBamboo,
		models.CategoryFruit, models.CategoryBanana:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plant category"})
		return
	}

	existing, err := h.Store.FetchSpecies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for species"})
		return
	}
	for _, s := range existing {
		if s.SpeciesCode == req.SpeciesCode {
			c.JSON(http.StatusConflict, gin.H{"error": "Species with this code already exists"})
			return
		}
	}

	newSpecies := models.Species{
		SpeciesCode:   req.SpeciesCode,
		SpeciesGroup:  req.SpeciesGroup,
		GroupLabel:    req.GroupLabel,
		PlantCategory: req.PlantCategory,
		NameTH:        req.NameTH,
		NameEN:        req.NameEN,
		NameSci:       req.NameSci,
		HexColor:      normalizeHexColor(req.HexColor),
		CreatedAt:     time.Now(),
	}

	id, err := h.Store.CreateSpecies(c.Request.Context(), &newSpecies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create species"})
		return
	}
	newSpecies.ID = id

	c.JSON(http.StatusCreated, newSpecies)
}

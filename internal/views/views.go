// server/internal/views/views.go

// Package views projects raw documents into the nested shapes the client
// renders. Nested sub-objects are rebuilt purely from the flat denormalized
// fields already on the document; nothing here does a secondary fetch.
package views

import (
	"math"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/geo"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
)

const defaultHexColor = "#22c55e"

// SpeciesRef is the species slice of a denormalized snapshot.
type SpeciesRef struct {
	SpeciesCode   string               `json:"species_code"`
	NameTH        string               `json:"name_th"`
	NameSci       string               `json:"name_sci"`
	PlantCategory models.PlantCategory `json:"plant_category"`
	HexColor      string               `json:"hex_color"`
}

// PlotRef is the plot slice of a denormalized snapshot.
type PlotRef struct {
	ID        string `json:"id"`
	PlotCode  string `json:"plot_code"`
	NameShort string `json:"name_short"`
	OwnerName string `json:"owner_name"`
}

// RecorderRef is present only when a recorder name was captured.
type RecorderRef struct {
	Fullname string `json:"fullname"`
}

// TreeDetails is a tree with its species/plot sub-objects reconstructed and
// its map position attached.
type TreeDetails struct {
	models.Tree
	Species SpeciesRef `json:"species"`
	Plot    PlotRef    `json:"plot"`
	Lat     *float64   `json:"lat"`
	Lng     *float64   `json:"lng"`
}

// ToTreeDetails projects a raw tree document. Missing denormalized fields
// default to empty strings (hex color to a visible green) rather than
// failing the row.
func ToTreeDetails(raw models.Tree) TreeDetails {
	hex := raw.SpeciesHexColor
	if hex == "" {
		hex = defaultHexColor
	}
	pos := geo.UtmToLatLng(raw.UtmX, raw.UtmY, raw.ID)
	return TreeDetails{
		Tree: raw,
		Species: SpeciesRef{
			SpeciesCode:   raw.SpeciesCode,
			NameTH:        raw.SpeciesNameTH,
			NameSci:       raw.SpeciesNameSci,
			PlantCategory: raw.PlantCategory,
			HexColor:      hex,
		},
		Plot: PlotRef{
			ID:        raw.PlotID,
			PlotCode:  raw.PlotCode,
			NameShort: raw.PlotNameShort,
			OwnerName: raw.PlotOwnerName,
		},
		Lat: pos.Lat,
		Lng: pos.Lng,
	}
}

// GrowthTreeRef is the tree slice embedded in a growth-log view.
type GrowthTreeRef struct {
	ID         string     `json:"id"`
	TreeCode   string     `json:"tree_code"`
	TreeNumber int        `json:"tree_number"`
	Species    SpeciesRef `json:"species"`
	Plot       PlotRef    `json:"plot"`
}

// GrowthLogDetails is a growth log with its snapshot unfolded back into
// nested objects and the child payload aliased by category.
type GrowthLogDetails struct {
	models.GrowthLog
	Tree         GrowthTreeRef      `json:"tree"`
	Recorder     *RecorderRef       `json:"recorder"`
	GrowthDbh    *models.DbhData    `json:"growth_dbh"`
	GrowthBamboo *models.BambooData `json:"growth_bamboo"`
	GrowthBanana *models.BananaData `json:"growth_banana"`
}

// ToGrowthLogDetails projects a raw growth-log document.
func ToGrowthLogDetails(raw models.GrowthLog) GrowthLogDetails {
	var recorder *RecorderRef
	if raw.RecorderName != "" {
		recorder = &RecorderRef{Fullname: raw.RecorderName}
	}
	return GrowthLogDetails{
		GrowthLog: raw,
		Tree: GrowthTreeRef{
			ID:         raw.TreeID,
			TreeCode:   raw.TreeCode,
			TreeNumber: raw.TreeNumber,
			Species: SpeciesRef{
				SpeciesCode:   raw.SpeciesCode,
				NameTH:        raw.SpeciesNameTH,
				NameSci:       raw.SpeciesNameSci,
				PlantCategory: raw.PlantCategory,
				HexColor:      defaultHexColor,
			},
			Plot: PlotRef{
				ID:        raw.PlotID,
				PlotCode:  raw.PlotCode,
				NameShort: raw.PlotNameShort,
			},
		},
		Recorder:     recorder,
		GrowthDbh:    raw.DbhData,
		GrowthBamboo: raw.BambooData,
		GrowthBanana: raw.BananaData,
	}
}

// Survival display levels for plot cards and the dashboard chart.
const (
	SurvivalGreen  = "green"  // >= 90
	SurvivalYellow = "yellow" // 75–89
	SurvivalRed    = "red"    // < 75
)

// PlotSummary is a plot with its survival figures attached.
type PlotSummary struct {
	models.Plot
	SurvivalRate  *int   `json:"survival_rate"`
	SurvivalLevel string `json:"survival_level,omitempty"`
}

// ToPlotSummary attaches the survival rate, rounded to the nearest integer.
// A plot with no trees has no rate (rendered as a dash client-side).
func ToPlotSummary(raw models.Plot) PlotSummary {
	summary := PlotSummary{Plot: raw}
	if raw.TreeCount > 0 {
		rate := int(math.Round(100 * float64(raw.AliveCount) / float64(raw.TreeCount)))
		summary.SurvivalRate = &rate
		switch {
		case rate >= 90:
			summary.SurvivalLevel = SurvivalGreen
		case rate >= 75:
			summary.SurvivalLevel = SurvivalYellow
		default:
			summary.SurvivalLevel = SurvivalRed
		}
	}
	return summary
}

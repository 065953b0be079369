// server/internal/views/views_test.go
package views

import (
	"testing"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestToPlotSummarySurvivalLevels(t *testing.T) {
	cases := []struct {
		treeCount  int
		aliveCount int
		wantRate   int
		wantLevel  string
	}{
		{100, 95, 95, SurvivalGreen},
		{100, 90, 90, SurvivalGreen},
		{100, 89, 89, SurvivalYellow},
		{100, 80, 80, SurvivalYellow},
		{100, 75, 75, SurvivalYellow},
		{100, 74, 74, SurvivalRed},
		{100, 50, 50, SurvivalRed},
		{100, 0, 0, SurvivalRed},
	}

	for _, tc := range cases {
		summary := ToPlotSummary(models.Plot{TreeCount: tc.treeCount, AliveCount: tc.aliveCount})
		assert.NotNil(t, summary.SurvivalRate)
		assert.Equal(t, tc.wantRate, *summary.SurvivalRate)
		assert.Equal(t, tc.wantLevel, summary.SurvivalLevel)
	}
}

func TestToPlotSummaryRoundsToNearest(t *testing.T) {
	summary := ToPlotSummary(models.Plot{TreeCount: 3, AliveCount: 2})
	assert.Equal(t, 67, *summary.SurvivalRate)

	summary = ToPlotSummary(models.Plot{TreeCount: 8, AliveCount: 7})
	assert.Equal(t, 88, *summary.SurvivalRate)
}

func TestToPlotSummaryNoTrees(t *testing.T) {
	summary := ToPlotSummary(models.Plot{TreeCount: 0, AliveCount: 0})
	assert.Nil(t, summary.SurvivalRate)
	assert.Empty(t, summary.SurvivalLevel)
}

func TestToTreeDetailsRebuildsRefs(t *testing.T) {
	raw := models.Tree{
		ID:             "t1",
		TreeCode:       "P1A0101",
		PlotID:         "p1",
		PlotCode:       "P01",
		PlotNameShort:  "P1",
		PlotOwnerName:  "Somchai",
		SpeciesCode:    "A01",
		SpeciesNameTH:  "สัก",
		SpeciesNameSci: "Tectona grandis",
		PlantCategory:  models.CategoryForest,
		SpeciesHexColor: "#8b5a2b",
	}

	details := ToTreeDetails(raw)

	assert.Equal(t, "A01", details.Species.SpeciesCode)
	assert.Equal(t, "#8b5a2b", details.Species.HexColor)
	assert.Equal(t, "P01", details.Plot.PlotCode)
	assert.Equal(t, "Somchai", details.Plot.OwnerName)
	assert.Nil(t, details.Lat)
	assert.Nil(t, details.Lng)
}

func TestToTreeDetailsDefaultsHexColor(t *testing.T) {
	details := ToTreeDetails(models.Tree{ID: "t1"})
	assert.Equal(t, defaultHexColor, details.Species.HexColor)
}

func TestToTreeDetailsAttachesPosition(t *testing.T) {
	raw := models.Tree{
		ID:   "t1",
		UtmX: floatPtr(470000),
		UtmY: floatPtr(2046000),
	}

	details := ToTreeDetails(raw)
	assert.NotNil(t, details.Lat)
	assert.NotNil(t, details.Lng)
}

func TestToGrowthLogDetailsRecorder(t *testing.T) {
	with := ToGrowthLogDetails(models.GrowthLog{RecorderName: "Araya"})
	assert.NotNil(t, with.Recorder)
	assert.Equal(t, "Araya", with.Recorder.Fullname)

	without := ToGrowthLogDetails(models.GrowthLog{})
	assert.Nil(t, without.Recorder)
}

func TestToGrowthLogDetailsAliasesPayload(t *testing.T) {
	bamboo := &models.BambooData{}
	details := ToGrowthLogDetails(models.GrowthLog{
		TreeID:     "t1",
		TreeCode:   "P1A0301",
		BambooData: bamboo,
	})

	assert.Equal(t, "P1A0301", details.Tree.TreeCode)
	assert.Equal(t, bamboo, details.GrowthBamboo)
	assert.Nil(t, details.GrowthDbh)
	assert.Nil(t, details.GrowthBanana)
}

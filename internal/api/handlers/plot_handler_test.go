// server/internal/api/handlers/plot_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDerivePlotNameShort(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"P01", "P1"},
		{"P09", "P9"},
		{"P10", "P10"},
		{"P23", "P23"},
		{"X01", "X01"}, // not a plot code, passed through
		{"P1", "P1"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DerivePlotNameShort(tc.in), "input %q", tc.in)
	}
}

func TestCreatePlotDerivesNameShort(t *testing.T) {
	store := database.NewMemStore()
	h := &PlotHandler{Store: store}

	c, w := testContext(t, http.MethodPost, "/plots", gin.H{
		"plot_code":  "P07",
		"owner_name": "Kamol",
	})
	h.CreatePlot(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	plots, err := store.FetchPlots(context.Background())
	assert.NoError(t, err)
	assert.Len(t, plots, 1)
	assert.Equal(t, "P07", plots[0].PlotCode)
	assert.Equal(t, "P7", plots[0].NameShort)
}

func TestCreatePlotRejectsBadCode(t *testing.T) {
	h := &PlotHandler{Store: database.NewMemStore()}

	for _, code := range []string{"P1", "P001", "07", "plot-7"} {
		c, w := testContext(t, http.MethodPost, "/plots", gin.H{
			"plot_code":  code,
			"owner_name": "Kamol",
		})
		h.CreatePlot(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "code %q", code)
	}
}

func TestCreatePlotDuplicateConflicts(t *testing.T) {
	store := database.NewMemStore()
	h := &PlotHandler{Store: store}

	body := gin.H{"plot_code": "P01", "owner_name": "Kamol"}

	c, w := testContext(t, http.MethodPost, "/plots", body)
	h.CreatePlot(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext(t, http.MethodPost, "/plots", body)
	h.CreatePlot(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetAllPlotsAttachesSurvival(t *testing.T) {
	store := database.NewMemStore()
	h := &PlotHandler{Store: store}

	ctx := context.Background()
	_, err := store.CreatePlot(ctx, &models.Plot{PlotCode: "P01", TreeCount: 100, AliveCount: 95})
	assert.NoError(t, err)
	_, err = store.CreatePlot(ctx, &models.Plot{PlotCode: "P02"})
	assert.NoError(t, err)

	c, w := testContext(t, http.MethodGet, "/plots", nil)
	h.GetAllPlots(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var summaries []views.PlotSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)

	assert.NotNil(t, summaries[0].SurvivalRate)
	assert.Equal(t, 95, *summaries[0].SurvivalRate)
	assert.Equal(t, views.SurvivalGreen, summaries[0].SurvivalLevel)

	assert.Nil(t, summaries[1].SurvivalRate, "a plot without trees has no rate")
}

func TestUpdatePlotAcceptsClientCounters(t *testing.T) {
	store := database.NewMemStore()
	h := &PlotHandler{Store: store}

	ctx := context.Background()
	id, err := store.CreatePlot(ctx, &models.Plot{PlotCode: "P01", NameShort: "P1"})
	assert.NoError(t, err)

	c, w := testContext(t, http.MethodPut, "/plots/"+id, gin.H{
		"tree_count":  120,
		"alive_count": 101,
	})
	c.Params = gin.Params{{Key: "id", Value: id}}
	h.UpdatePlot(c)

	assert.Equal(t, http.StatusOK, w.Code)

	plot, err := store.FetchPlot(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, 120, plot.TreeCount)
	assert.Equal(t, 101, plot.AliveCount)
}

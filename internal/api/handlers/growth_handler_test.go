// server/internal/api/handlers/growth_handler_test.go
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

func TestSubmitGrowthLogAppliesDefaults(t *testing.T) {
	store := database.NewMemStore()
	h := &GrowthHandler{Store: store}

	c, w := testContext(t, http.MethodPost, "/growth-logs", gin.H{
		"tree_id":        "t1",
		"survey_date":    "2025-06-15",
		"plant_category": "forest",
		"height_m":       3.5,
		"dbh_cm":         12.5,
	})
	h.SubmitGrowthLog(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])

	logs, err := store.FetchGrowthLogsByTree(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.StatusAlive, logs[0].Status, "status defaults to alive")
	assert.False(t, logs[0].Flowering, "flowering defaults to false")
	assert.Equal(t, "", logs[0].Note, "note defaults to empty")
	assert.NotNil(t, logs[0].DbhData)
	assert.Equal(t, 12.5, logs[0].DbhData.DbhCm)
	assert.Nil(t, logs[0].BambooData)
	assert.Nil(t, logs[0].BananaData)
}

func TestSubmitGrowthLogBambooPayload(t *testing.T) {
	store := database.NewMemStore()
	h := &GrowthHandler{Store: store}

	c, w := testContext(t, http.MethodPost, "/growth-logs", gin.H{
		"tree_id":        "t1",
		"survey_date":    "2025-06-15",
		"plant_category": "bamboo",
		"culm_count":     5,
		"dbh_1_cm":       2.1,
		"dbh_2_cm":       nil,
		"dbh_3_cm":       nil,
	})
	h.SubmitGrowthLog(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	logs, err := store.FetchGrowthLogsByTree(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Nil(t, logs[0].DbhData)
	assert.NotNil(t, logs[0].BambooData)
	assert.Equal(t, 5, *logs[0].BambooData.CulmCount)
	assert.Equal(t, 2.1, *logs[0].BambooData.Dbh1Cm)
	assert.Nil(t, logs[0].BambooData.Dbh2Cm)
	assert.Nil(t, logs[0].BambooData.Dbh3Cm)
}

func TestSubmitGrowthLogKeepsSnapshot(t *testing.T) {
	store := database.NewMemStore()
	h := &GrowthHandler{Store: store}

	c, w := testContext(t, http.MethodPost, "/growth-logs", gin.H{
		"tree_id":         "t1",
		"survey_date":     "2025-06-15",
		"plant_category":  "forest",
		"dbh_cm":          10.0,
		"tree_code":       "P1A0101",
		"tree_number":     1,
		"plot_id":         "p1",
		"plot_code":       "P01",
		"plot_name_short": "P1",
		"species_code":    "A01",
		"species_name_th": "สัก",
		"recorder_name":   "Araya",
	})
	h.SubmitGrowthLog(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	logs, err := store.FetchGrowthLogsByTree(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Equal(t, "P1A0101", logs[0].TreeCode)
	assert.Equal(t, "P01", logs[0].PlotCode)
	assert.Equal(t, "สัก", logs[0].SpeciesNameTH)
	assert.Equal(t, "Araya", logs[0].RecorderName)
}

func TestSubmitGrowthLogRejectsBadStatus(t *testing.T) {
	h := &GrowthHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPost, "/growth-logs", gin.H{
		"tree_id":        "t1",
		"survey_date":    "2025-06-15",
		"plant_category": "forest",
		"status":         "thriving",
	})
	h.SubmitGrowthLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestSubmitGrowthLogRequiresTreeAndDate(t *testing.T) {
	h := &GrowthHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPost, "/growth-logs", gin.H{
		"plant_category": "forest",
	})
	h.SubmitGrowthLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGrowthLogsByTreeProjectsView(t *testing.T) {
	store := database.NewMemStore()
	h := &GrowthHandler{Store: store}

	_, err := store.CreateGrowthLog(context.Background(), &models.GrowthLog{
		TreeID:       "t1",
		SurveyDate:   "2025-06-15",
		TreeCode:     "P1A0101",
		RecorderName: "Araya",
		DbhData:      &models.DbhData{DbhCm: 9.5},
	})
	assert.NoError(t, err)

	c, w := testContext(t, http.MethodGet, "/trees/t1/growth-logs", nil)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	h.GetGrowthLogsByTree(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var details []views.GrowthLogDetails
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Len(t, details, 1)
	assert.Equal(t, "P1A0101", details[0].Tree.TreeCode)
	assert.Equal(t, "Araya", details[0].Recorder.Fullname)
	assert.Equal(t, 9.5, details[0].GrowthDbh.DbhCm)
}

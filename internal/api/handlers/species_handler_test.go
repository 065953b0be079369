// server/internal/api/handlers/species_handler_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func speciesBody(code, hex string) gin.H {
	return gin.H{
		"species_code":   code,
		"species_group":  "A",
		"group_label":    "ไม้ป่า",
		"plant_category": "forest",
		"name_th":        "สัก",
		"hex_color":      hex,
	}
}

func TestCreateSpecies(t *testing.T) {
	h := &SpeciesHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPost, "/species", speciesBody("A01", "8b5a2b"))
	h.CreateSpecies(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "A01", body["species_code"])
}

func TestCreateSpeciesValidatesCodeAndColor(t *testing.T) {
	h := &SpeciesHandler{Store: database.NewMemStore()}

	for _, code := range []string{"a01", "A1", "A001", "01A"} {
		c, w := testContext(t, http.MethodPost, "/species", speciesBody(code, "8b5a2b"))
		h.CreateSpecies(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "code %q", code)
	}

	for _, hex := range []string{"8b5a2", "8b5a2bb", "#8b5a2", "gggggg"} {
		c, w := testContext(t, http.MethodPost, "/species", speciesBody("A01", hex))
		h.CreateSpecies(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "hex %q", hex)
	}
}

func TestCreateSpeciesNormalizesHexColor(t *testing.T) {
	h := &SpeciesHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodPost, "/species", speciesBody("A01", "8b5a2b"))
	h.CreateSpecies(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "#8b5a2b", decodeBody(t, w)["hex_color"])

	c, w = testContext(t, http.MethodPost, "/species", speciesBody("A02", "#22c55e"))
	h.CreateSpecies(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "#22c55e", decodeBody(t, w)["hex_color"])
}

func TestCreateSpeciesUnknownCategory(t *testing.T) {
	h := &SpeciesHandler{Store: database.NewMemStore()}

	body := speciesBody("A01", "8b5a2b")
	body["plant_category"] = "cactus"

	c, w := testContext(t, http.MethodPost, "/species", body)
	h.CreateSpecies(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSpeciesDuplicateConflicts(t *testing.T) {
	store := database.NewMemStore()
	h := &SpeciesHandler{Store: store}

	c, w := testContext(t, http.MethodPost, "/species", speciesBody("A01", "8b5a2b"))
	h.CreateSpecies(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext(t, http.MethodPost, "/species", speciesBody("A01", "22c55e"))
	h.CreateSpecies(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetAllSpeciesEmptyIsArray(t *testing.T) {
	h := &SpeciesHandler{Store: database.NewMemStore()}

	c, w := testContext(t, http.MethodGet, "/species", nil)
	h.GetAllSpecies(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

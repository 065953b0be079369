// server/internal/database/seeder_test.go
package database

import (
	"context"
	"testing"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedSpeciesPopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	assert.NoError(t, SeedSpecies(ctx, store))

	species, err := store.FetchSpecies(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, species)

	codes := make(map[string]models.PlantCategory)
	for _, sp := range species {
		codes[sp.SpeciesCode] = sp.PlantCategory
	}
	assert.Equal(t, models.CategoryForest, codes["A01"])
	assert.Equal(t, models.CategoryBamboo, codes["A03"])
	assert.Equal(t, models.CategoryBanana, codes["B02"])
}

func TestSeedSpeciesIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	assert.NoError(t, SeedSpecies(ctx, store))
	first, err := store.FetchSpecies(ctx)
	assert.NoError(t, err)

	assert.NoError(t, SeedSpecies(ctx, store))
	second, err := store.FetchSpecies(ctx)
	assert.NoError(t, err)

	assert.Len(t, second, len(first), "seeding a populated catalog adds nothing")
}

// server/internal/database/seeder.go
package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
)

func strPtr(s string) *string { return &s }

// SeedSpecies inserts the base species catalog if the collection is empty.
// Idempotent: a non-empty catalog skips seeding entirely.
func SeedSpecies(ctx context.Context, store Store) error {
	existing, err := store.FetchSpecies(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("species catalog already seeded, skipping", "count", len(existing))
		return nil
	}

	slog.Info("species catalog empty, seeding")
	now := time.Now()
	catalog := []models.Species{
		{SpeciesCode: "A01", SpeciesGroup: "A", GroupLabel: "ไม้ป่า", PlantCategory: models.CategoryForest,
			NameTH: "สัก", NameEN: strPtr("Teak"), NameSci: strPtr("Tectona grandis"), HexColor: "#2d5a27", CreatedAt: now},
		{SpeciesCode: "A02", SpeciesGroup: "A", GroupLabel: "ไม้ป่า", PlantCategory: models.CategoryForest,
			NameTH: "ประดู่", NameEN: strPtr("Burma padauk"), NameSci: strPtr("Pterocarpus macrocarpus"), HexColor: "#4a7c42", CreatedAt: now},
		{SpeciesCode: "A03", SpeciesGroup: "A", GroupLabel: "ไม้ป่า", PlantCategory: models.CategoryBamboo,
			NameTH: "ไผ่ซางหม่น", NameEN: strPtr("Pai sang mon"), NameSci: strPtr("Dendrocalamus sericeus"), HexColor: "#7cb342", CreatedAt: now},
		{SpeciesCode: "B01", SpeciesGroup: "B", GroupLabel: "ไม้ผล", PlantCategory: models.CategoryFruit,
			NameTH: "มะม่วง", NameEN: strPtr("Mango"), NameSci: strPtr("Mangifera indica"), HexColor: "#fbc02d", CreatedAt: now},
		{SpeciesCode: "B02", SpeciesGroup: "B", GroupLabel: "ไม้ผล", PlantCategory: models.CategoryBanana,
			NameTH: "กล้วยน้ำว้า", NameEN: strPtr("Cultivated banana"), NameSci: strPtr("Musa ABB"), HexColor: "#ffd54f", CreatedAt: now},
		{SpeciesCode: "B03", SpeciesGroup: "B", GroupLabel: "ไม้ผล", PlantCategory: models.CategoryRubber,
			NameTH: "ยางพารา", NameEN: strPtr("Rubber tree"), NameSci: strPtr("Hevea brasiliensis"), HexColor: "#6d4c41", CreatedAt: now},
	}
	for i := range catalog {
		if _, err := store.CreateSpecies(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	slog.Info("species catalog seeded", "count", len(catalog))
	return nil
}

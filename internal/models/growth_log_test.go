// server/internal/models/growth_log_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestBuildMeasurementDbhCategories(t *testing.T) {
	in := MeasurementInput{DbhCm: floatPtr(12.5)}

	for _, category := range []PlantCategory{CategoryForest, CategoryRubber, CategoryFruit} {
		m := BuildMeasurement(category, in)
		assert.NotNil(t, m, "category %s should build a DBH payload", category)

		dbh, ok := m.(*DbhData)
		assert.True(t, ok)
		assert.Equal(t, 12.5, dbh.DbhCm)
	}
}

func TestBuildMeasurementDbhMissingValue(t *testing.T) {
	m := BuildMeasurement(CategoryForest, MeasurementInput{})
	assert.Nil(t, m, "a DBH category with no dbh_cm has no child payload")
}

func TestBuildMeasurementBamboo(t *testing.T) {
	in := MeasurementInput{
		CulmCount: intPtr(5),
		Dbh1Cm:    floatPtr(2.1),
	}

	m := BuildMeasurement(CategoryBamboo, in)
	assert.NotNil(t, m)

	bamboo, ok := m.(*BambooData)
	assert.True(t, ok)
	assert.Equal(t, 5, *bamboo.CulmCount)
	assert.Equal(t, 2.1, *bamboo.Dbh1Cm)
	assert.Nil(t, bamboo.Dbh2Cm)
	assert.Nil(t, bamboo.Dbh3Cm)
}

func TestBuildMeasurementBambooIgnoresForeignFields(t *testing.T) {
	in := MeasurementInput{
		CulmCount: intPtr(3),
		DbhCm:     floatPtr(9.9),
		YieldHands: intPtr(4),
	}

	m := BuildMeasurement(CategoryBamboo, in)
	bamboo, ok := m.(*BambooData)
	assert.True(t, ok)
	assert.Equal(t, 3, *bamboo.CulmCount)
}

func TestBuildMeasurementBanana(t *testing.T) {
	in := MeasurementInput{
		TotalPlants:  intPtr(12),
		Plants1Yr:    intPtr(4),
		YieldBunches: intPtr(2),
		YieldHands:   intPtr(14),
		PricePerHand: floatPtr(25),
	}

	m := BuildMeasurement(CategoryBanana, in)
	banana, ok := m.(*BananaData)
	assert.True(t, ok)
	assert.Equal(t, 12, *banana.TotalPlants)
	assert.Equal(t, 4, *banana.Plants1Yr)
	assert.Equal(t, 2, *banana.YieldBunches)
	assert.Equal(t, 14, *banana.YieldHands)
	assert.Equal(t, 25.0, *banana.PricePerHand)
}

func TestBuildMeasurementBananaAllAbsent(t *testing.T) {
	m := BuildMeasurement(CategoryBanana, MeasurementInput{})
	banana, ok := m.(*BananaData)
	assert.True(t, ok, "banana always builds its payload, even empty")
	assert.Nil(t, banana.TotalPlants)
}

func TestBuildMeasurementUnknownCategory(t *testing.T) {
	m := BuildMeasurement(PlantCategory("cactus"), MeasurementInput{DbhCm: floatPtr(1)})
	assert.Nil(t, m)
}

func TestAttachSetsExactlyOnePayload(t *testing.T) {
	cases := []struct {
		name        string
		measurement Measurement
		check       func(t *testing.T, log GrowthLog)
	}{
		{
			name:        "dbh",
			measurement: &DbhData{DbhCm: 3.2},
			check: func(t *testing.T, log GrowthLog) {
				assert.NotNil(t, log.DbhData)
				assert.Nil(t, log.BambooData)
				assert.Nil(t, log.BananaData)
			},
		},
		{
			name:        "bamboo",
			measurement: &BambooData{CulmCount: intPtr(2)},
			check: func(t *testing.T, log GrowthLog) {
				assert.Nil(t, log.DbhData)
				assert.NotNil(t, log.BambooData)
				assert.Nil(t, log.BananaData)
			},
		},
		{
			name:        "banana",
			measurement: &BananaData{TotalPlants: intPtr(7)},
			check: func(t *testing.T, log GrowthLog) {
				assert.Nil(t, log.DbhData)
				assert.Nil(t, log.BambooData)
				assert.NotNil(t, log.BananaData)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var log GrowthLog
			tc.measurement.Attach(&log)
			tc.check(t, log)
		})
	}
}

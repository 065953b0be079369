// server/internal/models/growth_log.go
package models

import "time"

// GrowthLog is one dated field observation of one tree. The document is
// append-only and carries a denormalized snapshot of the owning tree, plot,
// species and recorder captured at submission time; the snapshot is never
// re-derived afterwards.
type GrowthLog struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	TreeID     string     `bson:"tree_id" json:"tree_id"`
	SurveyDate string     `bson:"survey_date" json:"survey_date"` // ISO 'YYYY-MM-DD'
	RecorderID *string    `bson:"recorder_id" json:"recorder_id"`
	HeightM    *float64   `bson:"height_m" json:"height_m"`
	Status     TreeStatus `bson:"status" json:"status"`
	Flowering  bool       `bson:"flowering" json:"flowering"`
	Note       string     `bson:"note" json:"note"`

	// Denormalized snapshot for querying and export without joins.
	TreeCode       string        `bson:"tree_code" json:"tree_code"`
	TreeNumber     int           `bson:"tree_number" json:"tree_number"`
	PlotID         string        `bson:"plot_id" json:"plot_id"`
	PlotCode       string        `bson:"plot_code" json:"plot_code"`
	PlotNameShort  string        `bson:"plot_name_short" json:"plot_name_short"`
	SpeciesCode    string        `bson:"species_code" json:"species_code"`
	SpeciesNameTH  string        `bson:"species_name_th" json:"species_name_th"`
	SpeciesNameSci string        `bson:"species_name_sci" json:"species_name_sci"`
	PlantCategory  PlantCategory `bson:"plant_category" json:"plant_category"`
	RecorderName   string        `bson:"recorder_name" json:"recorder_name"`

	// Embedded child measurement. Exactly one of the three is non-nil,
	// selected by the species plant category (see Measurement).
	DbhData    *DbhData    `bson:"dbh_data" json:"dbh_data"`
	BambooData *BambooData `bson:"bamboo_data" json:"bamboo_data"`
	BananaData *BananaData `bson:"banana_data" json:"banana_data"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DbhData is the child payload for forest, rubber and fruit species.
type DbhData struct {
	DbhCm float64 `bson:"dbh_cm" json:"dbh_cm"`
}

// BambooData is the child payload for bamboo: culm count plus up to three
// per-culm DBH measurements.
type BambooData struct {
	CulmCount *int     `bson:"culm_count" json:"culm_count"`
	Dbh1Cm    *float64 `bson:"dbh_1_cm" json:"dbh_1_cm"`
	Dbh2Cm    *float64 `bson:"dbh_2_cm" json:"dbh_2_cm"`
	Dbh3Cm    *float64 `bson:"dbh_3_cm" json:"dbh_3_cm"`
}

// BananaData is the child payload for banana stands.
type BananaData struct {
	TotalPlants  *int     `bson:"total_plants" json:"total_plants"`
	Plants1Yr    *int     `bson:"plants_1yr" json:"plants_1yr"`
	YieldBunches *int     `bson:"yield_bunches" json:"yield_bunches"`
	YieldHands   *int     `bson:"yield_hands" json:"yield_hands"`
	PricePerHand *float64 `bson:"price_per_hand" json:"price_per_hand"`
}

// Measurement is the tagged variant over the three child payload shapes.
// Attaching a measurement sets exactly its own key on the log, so "one
// shape populated" holds by construction rather than by convention.
type Measurement interface {
	Attach(log *GrowthLog)
}

func (d *DbhData) Attach(log *GrowthLog)    { log.DbhData = d }
func (b *BambooData) Attach(log *GrowthLog) { log.BambooData = b }
func (b *BananaData) Attach(log *GrowthLog) { log.BananaData = b }

// MeasurementInput carries every field a survey form can submit; which of
// them end up in the document is decided by the plant category alone.
type MeasurementInput struct {
	DbhCm        *float64 `json:"dbh_cm"`
	CulmCount    *int     `json:"culm_count"`
	Dbh1Cm       *float64 `json:"dbh_1_cm"`
	Dbh2Cm       *float64 `json:"dbh_2_cm"`
	Dbh3Cm       *float64 `json:"dbh_3_cm"`
	TotalPlants  *int     `json:"total_plants"`
	Plants1Yr    *int     `json:"plants_1yr"`
	YieldBunches *int     `json:"yield_bunches"`
	YieldHands   *int     `json:"yield_hands"`
	PricePerHand *float64 `json:"price_per_hand"`
}

// BuildMeasurement selects the child payload shape for the category and
// fills it from the relevant input fields only. DBH categories with no DBH
// value, and unknown categories, yield nil (no child payload).
func BuildMeasurement(category PlantCategory, in MeasurementInput) Measurement {
	switch category {
	case CategoryForest, CategoryRubber, CategoryFruit:
		if in.DbhCm == nil {
			return nil
		}
		return &DbhData{DbhCm: *in.DbhCm}
	case CategoryBamboo:
		return &BambooData{
			CulmCount: in.CulmCount,
			Dbh1Cm:    in.Dbh1Cm,
			Dbh2Cm:    in.Dbh2Cm,
			Dbh3Cm:    in.Dbh3Cm,
		}
	case CategoryBanana:
		return &BananaData{
			TotalPlants:  in.TotalPlants,
			Plants1Yr:    in.Plants1Yr,
			YieldBunches: in.YieldBunches,
			YieldHands:   in.YieldHands,
			PricePerHand: in.PricePerHand,
		}
	}
	return nil
}

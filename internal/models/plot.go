// server/internal/models/plot.go
package models

import "time"

type Plot struct {
	ID              string   `bson:"_id,omitempty" json:"id"`
	PlotCode        string   `bson:"plot_code" json:"plot_code"`   // 'P01', 'P12', ... unique
	NameShort       string   `bson:"name_short" json:"name_short"` // derived from plot_code: 'P1', 'P12'
	OwnerName       string   `bson:"owner_name" json:"owner_name"`
	GroupNumber     int      `bson:"group_number" json:"group_number"`
	AreaSqM         *float64 `bson:"area_sq_m" json:"area_sq_m"`
	Tambon          *string  `bson:"tambon" json:"tambon"`
	ElevationM      *float64 `bson:"elevation_m" json:"elevation_m"`
	BoundaryGeoJSON *string  `bson:"boundary_geojson" json:"boundary_geojson"`
	Note            *string  `bson:"note" json:"note"`

	// Denormalized counters. Written by clients (or an out-of-band job),
	// never recomputed by this server; the disabled Firestore triggers that
	// used to maintain them were abandoned over race concerns.
	TreeCount        int     `bson:"tree_count,omitempty" json:"tree_count"`
	AliveCount       int     `bson:"alive_count,omitempty" json:"alive_count"`
	LatestSurveyDate *string `bson:"latest_survey_date,omitempty" json:"latest_survey_date"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

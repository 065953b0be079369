// server/internal/models/species.go
package models

import "time"

type Species struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	SpeciesCode   string        `bson:"species_code" json:"species_code"` // 'A01', 'B12', ... unique
	SpeciesGroup  string        `bson:"species_group" json:"species_group"`
	GroupLabel    string        `bson:"group_label" json:"group_label"`
	PlantCategory PlantCategory `bson:"plant_category" json:"plant_category"`
	NameTH        string        `bson:"name_th" json:"name_th"`
	NameEN        *string       `bson:"name_en" json:"name_en"`
	NameSci       *string       `bson:"name_sci" json:"name_sci"`
	HexColor      string        `bson:"hex_color" json:"hex_color"` // '#' + 6 hex digits, e.g. '#22c55e'
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// server/internal/models/tree.go
package models

import "time"

type Tree struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	TreeCode    string   `bson:"tree_code" json:"tree_code"` // e.g. 'P1A0101': plot + species + sequence
	PlotID      string   `bson:"plot_id" json:"plot_id"`
	SpeciesID   string   `bson:"species_id" json:"species_id"`
	TreeNumber  int      `bson:"tree_number" json:"tree_number"`
	TagLabel    *string  `bson:"tag_label" json:"tag_label"`
	RowMain     *string  `bson:"row_main" json:"row_main"`
	RowSub      *string  `bson:"row_sub" json:"row_sub"`
	UtmX        *float64 `bson:"utm_x" json:"utm_x"` // easting, UTM zone 47N
	UtmY        *float64 `bson:"utm_y" json:"utm_y"` // northing
	Geom        *string  `bson:"geom" json:"geom"`
	GridSpacing *float64 `bson:"grid_spacing" json:"grid_spacing"`
	Note        *string  `bson:"note" json:"note"`

	// Denormalized species/plot snapshot, written once at tree creation so
	// list views never join.
	SpeciesCode     string        `bson:"species_code,omitempty" json:"species_code"`
	SpeciesNameTH   string        `bson:"species_name_th,omitempty" json:"species_name_th"`
	SpeciesNameSci  string        `bson:"species_name_sci,omitempty" json:"species_name_sci"`
	SpeciesHexColor string        `bson:"species_hex_color,omitempty" json:"species_hex_color"`
	PlantCategory   PlantCategory `bson:"plant_category,omitempty" json:"plant_category"`
	PlotCode        string        `bson:"plot_code,omitempty" json:"plot_code"`
	PlotNameShort   string        `bson:"plot_name_short,omitempty" json:"plot_name_short"`
	PlotOwnerName   string        `bson:"plot_owner_name,omitempty" json:"plot_owner_name"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

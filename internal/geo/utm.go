// server/internal/geo/utm.go
package geo

import (
	"log/slog"

	"github.com/im7mortal/UTM"
)

// The whole project area sits in UTM zone 47N (EPSG:32647), northern
// Thailand, so the zone is fixed rather than stored per tree.
const zoneNumber = 47

// LatLng is a WGS84 coordinate pair. Both fields are nil when the tree has
// no plottable position.
type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// UtmToLatLng converts a stored planar coordinate pair into geographic
// latitude/longitude for map display. Pure and idempotent: nil inputs yield
// (nil, nil), and a failed projection is logged with the tree id and
// degrades to (nil, nil) instead of propagating, so map rendering tolerates
// trees without a position.
func UtmToLatLng(utmX, utmY *float64, treeID string) LatLng {
	if utmX == nil || utmY == nil {
		return LatLng{}
	}

	lat, lng, err := UTM.ToLatLon(*utmX, *utmY, zoneNumber, "", true)
	if err != nil {
		slog.Warn("failed to convert coordinates for tree", "tree", treeID, "err", err)
		return LatLng{}
	}
	return LatLng{Lat: &lat, Lng: &lng}
}

// Package analytics aggregates reports into coarse geographic buckets.
package analytics

import (
	"fmt"
	"math"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
)

// Hotspot is one grid cell with its report count.
type Hotspot struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Count int     `json:"count"`
}

// Bucket groups reports by rounding lat/lng to one decimal (~10km cells).
// Each axis rounds independently, so points near a ±0.05° boundary can land
// in different cells despite being close; acceptable prototype-grade output.
func Bucket(reports []models.Report) []Hotspot {
	buckets := make(map[string]*Hotspot)
	order := make([]string, 0)
	for _, r := range reports {
		lat := math.Round(r.Geolocation.Lat*10) / 10
		lng := math.Round(r.Geolocation.Lng*10) / 10
		key := CellKey(r.Geolocation.Lat, r.Geolocation.Lng)
		b, ok := buckets[key]
		if !ok {
			b = &Hotspot{Lat: lat, Lng: lng}
			buckets[key] = b
			order = append(order, key)
		}
		b.Count++
	}

	out := make([]Hotspot, 0, len(order))
	for _, key := range order {
		out = append(out, *buckets[key])
	}
	return out
}

// CellKey renders the one-decimal grid key for a coordinate pair.
func CellKey(lat, lng float64) string {
	return fmt.Sprintf("%.1f_%.1f", lat, lng)
}

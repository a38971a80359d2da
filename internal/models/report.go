package models

// Geolocation is a WGS84 point.
type Geolocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is a citizen-submitted hazard observation. Apart from the verified
// flag, a report is immutable once created.
type Report struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	EventType   string      `json:"event_type"`
	Description string      `json:"description"`
	MediaURL    *string     `json:"media_url"`
	Geolocation Geolocation `json:"geolocation"`
	Timestamp   string      `json:"timestamp"`
	Verified    bool        `json:"verified"`
	Source      string      `json:"source"`
}

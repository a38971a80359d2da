package models

// SocialPost is a simulated social-media item with derived hazard keywords
// and a sentiment label. Read-only after ingestion.
type SocialPost struct {
	ID        string       `json:"id"`
	Platform  string       `json:"platform"`
	PostText  string       `json:"post_text"`
	Keywords  []string     `json:"keywords"`
	Sentiment string       `json:"sentiment"`
	Timestamp string       `json:"timestamp"`
	Location  *Geolocation `json:"location"`
}

package dto

type CreateReportRequest struct {
	EventType   string   `json:"event_type"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MediaBase64 string   `json:"media_base64"`
	MediaURL    string   `json:"media_url"`
}

type VerifyReportResponse struct {
	ID       string `json:"id"`
	Verified bool   `json:"verified"`
}

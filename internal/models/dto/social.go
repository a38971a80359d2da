package dto

import "github.com/oceanwatch/oceanwatch-be/internal/models"

type CreateSocialPostRequest struct {
	PostText  string              `json:"post_text"`
	Platform  string              `json:"platform"`
	Keywords  []string            `json:"keywords"`
	Sentiment string              `json:"sentiment"`
	Location  *models.Geolocation `json:"location"`
}

package dto

type ToggleUserRequest struct {
	IsActive *bool `json:"is_active"`
}

type ToggleUserResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

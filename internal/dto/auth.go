package dto

import "time"

type LoginRequestDTO struct {
	Role     string `json:"role" validate:"required,oneof=admin designer" example:"designer"`
	Password string `json:"password" validate:"required" example:"12345"`
}

type LoginResponseDTO struct {
	Message   string    `json:"message"`
	Role      string    `json:"role" example:"designer"`
	ExpiresAt time.Time `json:"expires_at" example:"2024-03-01T22:00:00Z"`
}

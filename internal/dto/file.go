package dto

import (
	"time"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
)

type AttachmentResponseDTO struct {
	Name      string    `json:"name" example:"sketch.pdf"`
	URL       string    `json:"url" example:"/files/42/sketch.pdf"`
	Size      int64     `json:"size" example:"20480"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-03-01T10:00:00Z"`
}

func NewAttachmentsResponse(files []domain.Attachment) []AttachmentResponseDTO {
	response := make([]AttachmentResponseDTO, len(files))
	for i, f := range files {
		response[i] = AttachmentResponseDTO{
			Name:      f.Name,
			URL:       f.URL,
			Size:      f.Size,
			UpdatedAt: f.UpdatedAt,
		}
	}
	return response
}

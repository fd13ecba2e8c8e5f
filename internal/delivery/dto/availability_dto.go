package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddUnavailableDateRequest struct {
	Date   string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Reason string `json:"reason" validate:"required"`
}

// Response DTOs

type UnavailableDateResponse struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"` // Format: YYYY-MM-DD
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type UnavailableDateListResponse struct {
	Dates []UnavailableDateResponse `json:"dates"`
	Total int                       `json:"total"`
}

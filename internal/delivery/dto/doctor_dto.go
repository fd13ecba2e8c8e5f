package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type EducationEntry struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        int    `json:"year" validate:"omitempty,gte=1900"`
}

type CertificationEntry struct {
	Name     string `json:"name" validate:"required"`
	IssuedBy string `json:"issued_by"`
	Year     int    `json:"year" validate:"omitempty,gte=1900"`
}

type WorkHours struct {
	Start string `json:"start" validate:"omitempty,len=5"` // Format: HH:MM
	End   string `json:"end" validate:"omitempty,len=5"`   // Format: HH:MM
}

type WeeklyAvailability struct {
	WorkDays  []string  `json:"work_days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	WorkHours WorkHours `json:"work_hours"`
}

// UpdateProfileRequest is a sparse profile update. Nil fields are left
// unchanged; name/email/phone apply to the account, the rest to the doctor
// record. Unknown fields are ignored by decoding.
type UpdateProfileRequest struct {
	Name            *string              `json:"name" validate:"omitempty,min=2"`
	Email           *string              `json:"email" validate:"omitempty,email"`
	Phone           *string              `json:"phone" validate:"omitempty,max=30"`
	Specialization  *string              `json:"specialization" validate:"omitempty,min=2"`
	Experience      *int                 `json:"experience" validate:"omitempty,gte=0"`
	Bio             *string              `json:"bio"`
	Education       []EducationEntry     `json:"education" validate:"omitempty,dive"`
	Certifications  []CertificationEntry `json:"certifications" validate:"omitempty,dive"`
	ConsultationFee *decimal.Decimal     `json:"consultation_fee"`
	Availability    *WeeklyAvailability  `json:"availability"`
}

// Response DTOs

// ProfileResponse merges the doctor record with the linked account fields.
type ProfileResponse struct {
	UserID          uuid.UUID            `json:"user_id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone,omitempty"`
	Specialization  string               `json:"specialization"`
	Experience      int                  `json:"experience"`
	Bio             string               `json:"bio,omitempty"`
	Education       []EducationEntry     `json:"education"`
	Certifications  []CertificationEntry `json:"certifications"`
	Status          string               `json:"status"`
	ConsultationFee *decimal.Decimal     `json:"consultation_fee,omitempty"`
	Availability    *WeeklyAvailability  `json:"availability,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

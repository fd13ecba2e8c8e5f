package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnavailableDate is a calendar day a doctor has blocked from booking.
// The compound unique index keeps one entry per (doctor, date); the
// database constraint is the only duplicate guard.
type UnavailableDate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unavailable_dates_doctor_date" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_unavailable_dates_doctor_date" json:"date"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (UnavailableDate) TableName() string {
	return "unavailable_dates"
}

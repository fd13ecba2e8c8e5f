package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ApprovalStatus is the admin approval state of a doctor profile
type ApprovalStatus string

const (
	ApprovalStatusApproved    ApprovalStatus = "approved"
	ApprovalStatusNotApproved ApprovalStatus = "not-approved"
	ApprovalStatusDeclined    ApprovalStatus = "declined"
)

// EducationEntry is one element of the doctor's education history
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// CertificationEntry is one professional certification
type CertificationEntry struct {
	Name     string `json:"name"`
	IssuedBy string `json:"issued_by"`
	Year     int    `json:"year"`
}

// WorkHours is a daily working window, times formatted HH:MM
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyAvailability is the doctor's recurring availability template
type WeeklyAvailability struct {
	WorkDays  []string  `json:"work_days"`
	WorkHours WorkHours `json:"work_hours"`
}

// Doctor represents doctor professional data, linked 1:1 to a user account.
// Education, certifications and the availability template are stored as
// jsonb sub-documents.
type Doctor struct {
	UserID          uuid.UUID                                    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string                                       `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience      int                                          `gorm:"not null;default:0" json:"experience"`
	Bio             string                                       `gorm:"type:text" json:"bio,omitempty"`
	Education       datatypes.JSONType[[]EducationEntry]         `gorm:"type:jsonb" json:"education"`
	Certifications  datatypes.JSONType[[]CertificationEntry]     `gorm:"type:jsonb" json:"certifications"`
	Status          ApprovalStatus                               `gorm:"type:varchar(20);not null;default:'not-approved';index" json:"status"`
	ConsultationFee *decimal.Decimal                             `gorm:"type:numeric(10,2)" json:"consultation_fee,omitempty"`
	Availability    datatypes.JSONType[*WeeklyAvailability]      `gorm:"type:jsonb" json:"availability"`
	CreatedAt       time.Time                                    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                                    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsApproved checks if the profile has been approved by an admin
func (d *Doctor) IsApproved() bool {
	return d.Status == ApprovalStatusApproved
}

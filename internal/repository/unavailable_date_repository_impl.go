package repository

import (
	"context"

	"doctor-dashboard-api/internal/domain/entity"
	domainRepo "doctor-dashboard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type unavailableDateRepository struct {
	db *gorm.DB
}

func NewUnavailableDateRepository(db *gorm.DB) domainRepo.UnavailableDateRepository {
	return &unavailableDateRepository{db: db}
}

// Create inserts the record without any duplicate pre-check; the compound
// unique index on (doctor_id, date) rejects duplicates and the violation is
// surfaced to the caller.
func (r *unavailableDateRepository) Create(ctx context.Context, date *entity.UnavailableDate) error {
	return r.db.WithContext(ctx).Create(date).Error
}

func (r *unavailableDateRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.UnavailableDate, error) {
	var dates []entity.UnavailableDate
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date ASC").
		Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *unavailableDateRepository) DeleteByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Delete(&entity.UnavailableDate{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"context"

	"doctor-dashboard-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
}

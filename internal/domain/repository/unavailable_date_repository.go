package repository

import (
	"context"

	"doctor-dashboard-api/internal/domain/entity"

	"github.com/google/uuid"
)

type UnavailableDateRepository interface {
	Create(ctx context.Context, date *entity.UnavailableDate) error
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.UnavailableDate, error)
	DeleteByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (int64, error)
}

package repository

import (
	"context"

	"doctor-dashboard-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
}

package usecase

import (
	"context"
	"errors"

	"doctor-dashboard-api/internal/converter"
	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/entity"
	"doctor-dashboard-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// ListAppointments returns all appointments for the doctor, newest first,
// with patient identity fields joined in.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByIDAndDoctorID(ctx, appointmentID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus moves the appointment to the requested status.
// Any status may follow any other; only enum membership is enforced. Notes
// are overwritten only when non-empty.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByIDAndDoctorID(ctx, appointmentID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = status
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-dashboard-api/internal/converter"
	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/entity"
	"doctor-dashboard-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDate                = errors.New("cannot mark past dates as unavailable")
	ErrDuplicateDate           = errors.New("this date is already marked as unavailable")
	ErrUnavailableDateNotFound = errors.New("unavailable date not found")
)

type AvailabilityUsecase interface {
	ListUnavailableDates(ctx context.Context, doctorID uuid.UUID) (*dto.UnavailableDateListResponse, error)
	AddUnavailableDate(ctx context.Context, doctorID uuid.UUID, req *dto.AddUnavailableDateRequest) (*dto.UnavailableDateResponse, error)
	RemoveUnavailableDate(ctx context.Context, doctorID, dateID uuid.UUID) error
}

type availabilityUsecase struct {
	log                 *logrus.Logger
	unavailableDateRepo repository.UnavailableDateRepository
	now                 func() time.Time
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	unavailableDateRepo repository.UnavailableDateRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:                 log,
		unavailableDateRepo: unavailableDateRepo,
		now:                 time.Now,
	}
}

// ListUnavailableDates returns the doctor's blackout dates sorted ascending
// by date. Month grouping for display is a client concern.
func (u *availabilityUsecase) ListUnavailableDates(ctx context.Context, doctorID uuid.UUID) (*dto.UnavailableDateListResponse, error) {
	dates, err := u.unavailableDateRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find unavailable dates for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.UnavailableDateListResponse{
		Dates: converter.UnavailableDatesToResponses(dates),
		Total: len(dates),
	}, nil
}

// AddUnavailableDate creates a blackout entry. Dates strictly before the
// current day are rejected. Duplicates are not pre-checked; the insert is
// attempted and the unique-constraint violation from the database is mapped
// to ErrDuplicateDate, so concurrent double-submission cannot slip through.
func (u *availabilityUsecase) AddUnavailableDate(ctx context.Context, doctorID uuid.UUID, req *dto.AddUnavailableDateRequest) (*dto.UnavailableDateResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	now := u.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	unavailableDate := &entity.UnavailableDate{
		DoctorID: doctorID,
		Date:     date,
		Reason:   req.Reason,
	}

	if err := u.unavailableDateRepo.Create(ctx, unavailableDate); err != nil {
		if isDuplicateKeyError(err, "doctor_date") {
			return nil, ErrDuplicateDate
		}
		u.log.Warnf("Failed to create unavailable date: %+v", err)
		return nil, err
	}

	return converter.UnavailableDateToResponse(unavailableDate), nil
}

func (u *availabilityUsecase) RemoveUnavailableDate(ctx context.Context, doctorID, dateID uuid.UUID) error {
	affectedRows, err := u.unavailableDateRepo.DeleteByIDAndDoctorID(ctx, dateID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete unavailable date %s: %+v", dateID, err)
		return err
	}
	if affectedRows == 0 {
		return ErrUnavailableDateNotFound
	}

	return nil
}

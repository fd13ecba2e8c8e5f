package usecase

import (
	"context"
	"errors"

	"doctor-dashboard-api/internal/converter"
	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrDoctorNotFound = errors.New("doctor profile not found")
	ErrEmailExists    = errors.New("email already exists")
)

type DoctorProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type doctorProfileUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
}

func NewDoctorProfileUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToProfileResponse(doctor), nil
}

// UpdateProfile applies a sparse update: nil request fields are left
// unchanged. Account fields (name, email, phone) are written to the users
// row, the remaining fields to the doctors row.
func (u *doctorProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Account fields
	if req.Name != nil || req.Email != nil || req.Phone != nil {
		if req.Name != nil {
			doctor.User.FullName = *req.Name
		}
		if req.Email != nil {
			doctor.User.Email = *req.Email
		}
		if req.Phone != nil {
			doctor.User.Phone = *req.Phone
		}
		if err := u.userRepo.Update(ctx, &doctor.User); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailExists
			}
			u.log.Warnf("Failed to update user account: %+v", err)
			return nil, err
		}
	}

	// Doctor fields
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.Education != nil {
		doctor.Education = datatypes.NewJSONType(converter.EducationFromDTO(req.Education))
	}
	if req.Certifications != nil {
		doctor.Certifications = datatypes.NewJSONType(converter.CertificationsFromDTO(req.Certifications))
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = req.ConsultationFee
	}
	if req.Availability != nil {
		doctor.Availability = datatypes.NewJSONType(converter.AvailabilityFromDTO(req.Availability))
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	return converter.DoctorToProfileResponse(doctor), nil
}

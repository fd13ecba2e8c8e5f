package converter

import (
	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/entity"
)

// DoctorToProfileResponse merges a Doctor entity with its linked account
// fields into a ProfileResponse DTO
func DoctorToProfileResponse(doctor *entity.Doctor) *dto.ProfileResponse {
	if doctor == nil {
		return nil
	}

	return &dto.ProfileResponse{
		UserID:          doctor.UserID,
		Name:            doctor.User.FullName,
		Email:           doctor.User.Email,
		Phone:           doctor.User.Phone,
		Specialization:  doctor.Specialization,
		Experience:      doctor.Experience,
		Bio:             doctor.Bio,
		Education:       educationToDTO(doctor.Education.Data()),
		Certifications:  certificationsToDTO(doctor.Certifications.Data()),
		Status:          string(doctor.Status),
		ConsultationFee: doctor.ConsultationFee,
		Availability:    availabilityToDTO(doctor.Availability.Data()),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

func educationToDTO(entries []entity.EducationEntry) []dto.EducationEntry {
	result := make([]dto.EducationEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		}
	}
	return result
}

func certificationsToDTO(entries []entity.CertificationEntry) []dto.CertificationEntry {
	result := make([]dto.CertificationEntry, len(entries))
	for i, c := range entries {
		result[i] = dto.CertificationEntry{
			Name:     c.Name,
			IssuedBy: c.IssuedBy,
			Year:     c.Year,
		}
	}
	return result
}

func availabilityToDTO(availability *entity.WeeklyAvailability) *dto.WeeklyAvailability {
	if availability == nil {
		return nil
	}
	return &dto.WeeklyAvailability{
		WorkDays: availability.WorkDays,
		WorkHours: dto.WorkHours{
			Start: availability.WorkHours.Start,
			End:   availability.WorkHours.End,
		},
	}
}

// EducationFromDTO converts education input back to entity form
func EducationFromDTO(entries []dto.EducationEntry) []entity.EducationEntry {
	result := make([]entity.EducationEntry, len(entries))
	for i, e := range entries {
		result[i] = entity.EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		}
	}
	return result
}

// CertificationsFromDTO converts certification input back to entity form
func CertificationsFromDTO(entries []dto.CertificationEntry) []entity.CertificationEntry {
	result := make([]entity.CertificationEntry, len(entries))
	for i, c := range entries {
		result[i] = entity.CertificationEntry{
			Name:     c.Name,
			IssuedBy: c.IssuedBy,
			Year:     c.Year,
		}
	}
	return result
}

// AvailabilityFromDTO converts an availability template back to entity form
func AvailabilityFromDTO(availability *dto.WeeklyAvailability) *entity.WeeklyAvailability {
	if availability == nil {
		return nil
	}
	return &entity.WeeklyAvailability{
		WorkDays: availability.WorkDays,
		WorkHours: entity.WorkHours{
			Start: availability.WorkHours.Start,
			End:   availability.WorkHours.End,
		},
	}
}

package converter

import (
	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/entity"
)

// UnavailableDateToResponse converts an UnavailableDate entity to its
// response DTO
func UnavailableDateToResponse(date *entity.UnavailableDate) *dto.UnavailableDateResponse {
	if date == nil {
		return nil
	}

	return &dto.UnavailableDateResponse{
		ID:        date.ID,
		DoctorID:  date.DoctorID,
		Date:      date.Date.Format("2006-01-02"),
		Reason:    date.Reason,
		CreatedAt: date.CreatedAt,
	}
}

// UnavailableDatesToResponses converts a slice of UnavailableDate entities,
// preserving the ascending date ordering
func UnavailableDatesToResponses(dates []entity.UnavailableDate) []dto.UnavailableDateResponse {
	responses := make([]dto.UnavailableDateResponse, len(dates))
	for i := range dates {
		resp := UnavailableDateToResponse(&dates[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

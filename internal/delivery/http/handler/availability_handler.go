package handler

import (
	"encoding/json"
	"net/http"

	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/delivery/http/middleware"
	"doctor-dashboard-api/internal/usecase"
	"doctor-dashboard-api/pkg/response"
	"doctor-dashboard-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) ListUnavailableDates(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	dates, err := h.availabilityUsecase.ListUnavailableDates(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get unavailable dates")
		return
	}

	response.Success(w, http.StatusOK, "Unavailable dates retrieved successfully", dates)
}

func (h *AvailabilityHandler) AddUnavailableDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.AddUnavailableDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	date, err := h.availabilityUsecase.AddUnavailableDate(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrPastDate:
			response.BadRequest(w, "Cannot mark past dates as unavailable")
		case usecase.ErrDuplicateDate:
			response.BadRequest(w, "This date is already marked as unavailable")
		default:
			response.InternalServerError(w, "Failed to add unavailable date")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Unavailable date added successfully", date)
}

func (h *AvailabilityHandler) RemoveUnavailableDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	dateID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid date ID")
		return
	}

	if err := h.availabilityUsecase.RemoveUnavailableDate(r.Context(), userID, dateID); err != nil {
		if err == usecase.ErrUnavailableDateNotFound {
			response.NotFound(w, "Unavailable date not found")
			return
		}
		response.InternalServerError(w, "Failed to remove unavailable date")
		return
	}

	response.Success(w, http.StatusOK, "Unavailable date removed successfully", nil)
}

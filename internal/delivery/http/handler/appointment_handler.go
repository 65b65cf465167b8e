package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w)
			return
		}
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Error: "+h.validator.FirstError(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPastAppointmentDate, usecase.ErrInvalidAppointmentDate, usecase.ErrInvalidTimeFormat:
			response.DomainError(w, err)
		default:
			response.Text(w, http.StatusInternalServerError, "Error: Could not create appointment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Error: "+h.validator.FirstError(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrPastAppointmentDate,
			usecase.ErrInvalidAppointmentDate, usecase.ErrInvalidTimeFormat, usecase.ErrInvalidStatus:
			response.DomainError(w, err)
		default:
			response.Text(w, http.StatusInternalServerError, "Error: Could not update appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.DomainError(w, err)
			return
		}
		response.Text(w, http.StatusInternalServerError, "Error: Could not delete appointment")
		return
	}

	response.Text(w, http.StatusOK, "Appointment deleted successfully")
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	status := r.URL.Query().Get("status")

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), id, status)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrInvalidStatus:
			response.DomainError(w, err)
		default:
			response.Text(w, http.StatusInternalServerError, "Error: Could not update appointment status")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	patient := r.URL.Query().Get("patient")

	appointments, err := h.appointmentUsecase.SearchByPatient(r.Context(), patient)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Today(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.Today(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.Upcoming(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ThisWeek(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ThisWeek(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ThisMonth(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ThisMonth(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("startDate"))
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid startDate, use YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("endDate"))
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid endDate, use YYYY-MM-DD")
		return
	}

	appointments, err := h.appointmentUsecase.ByDateRange(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

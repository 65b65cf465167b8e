package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w)
			return
		}
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Error: "+h.validator.FirstError(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPhoneAlreadyExists, usecase.ErrEmailAlreadyExists:
			response.DomainError(w, err)
		default:
			response.Text(w, http.StatusInternalServerError, "Error: Could not create patient")
		}
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Error: "+h.validator.FirstError(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound, usecase.ErrPhoneAlreadyExists, usecase.ErrEmailAlreadyExists:
			response.DomainError(w, err)
		default:
			response.Text(w, http.StatusInternalServerError, "Error: Could not update patient")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Envelope(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrPatientNotFound {
			response.DomainError(w, err)
			return
		}
		response.Text(w, http.StatusInternalServerError, "Error: Could not delete patient")
		return
	}

	response.Text(w, http.StatusOK, "Patient deleted successfully")
}

func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	patients, err := h.patientUsecase.SearchByName(r.Context(), name)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.patientUsecase.Count(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, count)
}

func (h *PatientHandler) Recent(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.Recent(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, patients)
}

// parseID extracts the positive integer {id} path variable.
func parseID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}

package dto

import (
	"time"
)

// Request DTOs

// AppointmentRequest is the body for both create and full update. Dates are
// calendar dates (YYYY-MM-DD), times are wall-clock (HH:MM) without zone.
type AppointmentRequest struct {
	PatientName     string `json:"patientName" validate:"required,max=100"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime"`
	Treatment       string `json:"treatment" validate:"omitempty,max=200"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
	Status          string `json:"status"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patientName"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime,omitempty"`
	Treatment       string    `json:"treatment,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

package dto

import (
	"time"
)

// Request DTOs

// PatientRequest is the body for both create and full update.
type PatientRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Address string `json:"address"`
}

// Response DTOs

type PatientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment.
//
// There is no transition graph: any status may follow any status. The
// dedicated status endpoint and the full update path both accept every
// value below.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "SCHEDULED"
	StatusConfirmed   AppointmentStatus = "CONFIRMED"
	StatusInProgress  AppointmentStatus = "IN_PROGRESS"
	StatusCompleted   AppointmentStatus = "COMPLETED"
	StatusCancelled   AppointmentStatus = "CANCELLED"
	StatusNoShow      AppointmentStatus = "NO_SHOW"
	StatusRescheduled AppointmentStatus = "RESCHEDULED"
)

// AllStatuses lists every appointment status, in declaration order.
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
	StatusRescheduled,
}

// IsValid reports whether s is one of the known status values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// Appointment represents a dental appointment.
//
// PatientName is free text, not a foreign key: appointments carry their own
// copy of the name and stay valid when the patient record changes or goes
// away.
type Appointment struct {
	ID              int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName     string            `gorm:"type:varchar(100);not null" json:"patientName"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"type:varchar(5)" json:"appointmentTime,omitempty"`
	Treatment       string            `gorm:"type:varchar(200)" json:"treatment,omitempty"`
	Notes           string            `gorm:"type:varchar(1000)" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted reports whether the appointment has been completed.
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

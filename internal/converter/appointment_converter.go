package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// The date is rendered as YYYY-MM-DD; the time column already holds HH:MM.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Treatment:       appointment.Treatment,
		Notes:           appointment.Notes,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities, preserving order.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrPastAppointmentDate    = errors.New("cannot schedule appointment in the past")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat      = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus          = errors.New("invalid appointment status")
)

// DefaultTreatment is substituted when an appointment is created without one.
const DefaultTreatment = "General Consultation"

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	SearchByPatient(ctx context.Context, patientName string) ([]dto.AppointmentResponse, error)
	Today(ctx context.Context) ([]dto.AppointmentResponse, error)
	Upcoming(ctx context.Context) ([]dto.AppointmentResponse, error)
	ThisWeek(ctx context.Context) ([]dto.AppointmentResponse, error)
	ThisMonth(ctx context.Context) ([]dto.AppointmentResponse, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]dto.AppointmentResponse, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error)
	Recent(ctx context.Context) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	now func() time.Time,
) AppointmentUsecase {
	if now == nil {
		now = time.Now
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		now:             now,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if req.AppointmentTime != "" {
		if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
	}
	if date.Before(u.today()) {
		return nil, ErrPastAppointmentDate
	}

	treatment := req.Treatment
	if treatment == "" {
		treatment = DefaultTreatment
	}

	// New appointments always start out SCHEDULED; any status in the
	// request body is ignored.
	appointment := &entity.Appointment{
		PatientName:     req.PatientName,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Treatment:       treatment,
		Notes:           req.Notes,
		Status:          entity.StatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if req.AppointmentTime != "" {
		if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
	}
	// Checked against today even when the date itself did not change.
	if date.Before(u.today()) {
		return nil, ErrPastAppointmentDate
	}

	// A missing status means SCHEDULED, matching the entity default.
	status := entity.StatusScheduled
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	appointment.PatientName = req.PatientName
	appointment.AppointmentDate = date
	appointment.AppointmentTime = req.AppointmentTime
	appointment.Treatment = req.Treatment
	appointment.Notes = req.Notes
	appointment.Status = status

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	exists, err := u.appointmentRepo.ExistsByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to check appointment existence: %+v", err)
		return err
	}
	if !exists {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	return nil
}

// UpdateStatus sets only the status field. There is no transition check:
// any status may follow any status.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = newStatus

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) SearchByPatient(ctx context.Context, patientName string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.SearchByPatientName(ctx, u.db, patientName)
	if err != nil {
		u.log.Warnf("Failed to search appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Today(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindToday(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find today's appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Upcoming(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcoming(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

// ThisWeek returns the appointments in the Monday–Sunday span containing
// today, both endpoints inclusive.
func (u *appointmentUsecase) ThisWeek(ctx context.Context) ([]dto.AppointmentResponse, error) {
	today := u.today()
	offset := (int(today.Weekday()) + 6) % 7 // days since Monday
	monday := today.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	appointments, err := u.appointmentRepo.FindByDateRange(ctx, u.db, monday, sunday)
	if err != nil {
		u.log.Warnf("Failed to find this week's appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ThisMonth(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindThisMonth(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find this month's appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ByDateRange(ctx context.Context, start, end time.Time) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDateRange(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find appointments by date range: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Count(ctx context.Context) (int64, error) {
	count, err := u.appointmentRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return 0, err
	}
	return count, nil
}

func (u *appointmentUsecase) CountByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error) {
	count, err := u.appointmentRepo.CountByStatus(ctx, u.db, status)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return 0, err
	}
	return count, nil
}

func (u *appointmentUsecase) Recent(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindRecent(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find recent appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

// today returns the current calendar date at UTC midnight, the same
// normalization parseDate applies to incoming dates.
func (u *appointmentUsecase) today() time.Time {
	t := u.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

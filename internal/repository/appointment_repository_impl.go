package repository

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

// recentLimit caps the "recent" queries for both entities.
const recentLimit = 10

type appointmentRepository struct {
	now func() time.Time
}

// NewAppointmentRepository returns an AppointmentRepository. The now function
// drives the today/upcoming/this-month window queries; pass nil for time.Now.
func NewAppointmentRepository(now func() time.Time) domainRepo.AppointmentRepository {
	if now == nil {
		now = time.Now
	}
	return &appointmentRepository{now: now}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) SearchByPatientName(ctx context.Context, db *gorm.DB, patientName string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("patient_name ILIKE ?", "%"+patientName+"%").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date = ?", startOfDay(date)).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByStatus(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).Where("status = ?", status).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindToday(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date = ?", startOfDay(r.now())).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date >= ?", startOfDay(r.now())).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDateRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date <= ?", startOfDay(start), startOfDay(end)).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindThisMonth(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	start := startOfMonth(r.now())
	end := start.AddDate(0, 1, 0)

	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindRecent(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

package repository

import (
	"context"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	SearchByPatientName(ctx context.Context, db *gorm.DB, patientName string) ([]entity.Appointment, error)
	FindByDate(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	FindByStatus(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error)
	CountByStatus(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindToday(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindUpcoming(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByDateRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	FindThisMonth(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindRecent(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
}

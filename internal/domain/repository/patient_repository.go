package repository

import (
	"context"

	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error)
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Patient, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindRegisteredToday(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindRegisteredThisMonth(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindRecent(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
}

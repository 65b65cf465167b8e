package repository

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	now func() time.Time
}

// NewPatientRepository returns a PatientRepository. The now function drives
// the "today" / "this month" window queries; pass nil for time.Now.
func NewPatientRepository(now func() time.Time) domainRepo.PatientRepository {
	if now == nil {
		now = time.Now
	}
	return &patientRepository{now: now}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{}).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) ExistsByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) SearchByName(ctx context.Context, db *gorm.DB, name string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("name ILIKE ?", "%"+name+"%").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) FindRegisteredToday(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	start := startOfDay(r.now())
	end := start.AddDate(0, 0, 1)

	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindRegisteredThisMonth(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	start := startOfMonth(r.now())
	end := start.AddDate(0, 1, 0)

	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindRecent(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

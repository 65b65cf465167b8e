package usecase

import (
	"context"
	"errors"
	"strings"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPhoneAlreadyExists = errors.New("a patient with this phone number already exists")
	ErrEmailAlreadyExists = errors.New("a patient with this email already exists")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.PatientResponse, error)
	Count(ctx context.Context) (int64, error)
	RegisteredToday(ctx context.Context) ([]dto.PatientResponse, error)
	RegisteredThisMonth(ctx context.Context) ([]dto.PatientResponse, error)
	Recent(ctx context.Context) ([]dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	phoneExists, err := u.patientRepo.ExistsByPhone(ctx, u.db, req.Phone)
	if err != nil {
		u.log.Warnf("Failed to check phone uniqueness: %+v", err)
		return nil, err
	}
	if phoneExists {
		return nil, ErrPhoneAlreadyExists
	}

	if req.Email != "" {
		emailExists, err := u.patientRepo.ExistsByEmail(ctx, u.db, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if emailExists {
			return nil, ErrEmailAlreadyExists
		}
	}

	patient := &entity.Patient{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		// The existence checks above race with concurrent creates; the
		// unique indexes are the backstop.
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Uniqueness only matters when the value actually changes: updating a
	// patient to its own phone or email must succeed.
	if req.Phone != patient.Phone {
		phoneExists, err := u.patientRepo.ExistsByPhone(ctx, u.db, req.Phone)
		if err != nil {
			u.log.Warnf("Failed to check phone uniqueness: %+v", err)
			return nil, err
		}
		if phoneExists {
			return nil, ErrPhoneAlreadyExists
		}
	}

	if req.Email != "" && req.Email != patient.Email {
		emailExists, err := u.patientRepo.ExistsByEmail(ctx, u.db, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if emailExists {
			return nil, ErrEmailAlreadyExists
		}
	}

	patient.Name = req.Name
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	exists, err := u.patientRepo.ExistsByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to check patient existence: %+v", err)
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) SearchByName(ctx context.Context, name string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.SearchByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Count(ctx context.Context) (int64, error) {
	count, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return 0, err
	}
	return count, nil
}

func (u *patientUsecase) RegisteredToday(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindRegisteredToday(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find patients registered today: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) RegisteredThisMonth(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindRegisteredThisMonth(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find patients registered this month: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Recent(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindRecent(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find recent patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation whose constraint name contains the given fragment.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

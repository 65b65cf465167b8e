package service

import (
	"context"
	"time"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedService inserts sample clinic data on startup so a fresh install has
// something to show. It is a no-op when the patients table already has rows.
type SeedService struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	now func() time.Time,
) *SeedService {
	if now == nil {
		now = time.Now
	}
	return &SeedService{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		now:             now,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.patientRepo.Count(ctx, s.db)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("Database already contains data, skipping initialization")
		return nil
	}

	s.log.Info("Adding sample data to dental clinic database")

	patients := []entity.Patient{
		{Name: "John Doe", Phone: "0555-123-4567", Email: "john.doe@email.com", Address: "123 Main St, Istanbul"},
		{Name: "Jane Smith", Phone: "0555-987-6543", Email: "jane.smith@email.com", Address: "456 Oak Ave, Ankara"},
		{Name: "Ahmet Yılmaz", Phone: "0555-456-7890", Email: "ahmet.yilmaz@email.com", Address: "789 Pine Rd, Izmir"},
		{Name: "Fatma Kaya", Phone: "0555-321-0987", Email: "fatma.kaya@email.com", Address: "321 Elm St, Bursa"},
		{Name: "Mike Johnson", Phone: "0555-654-3210", Email: "mike.johnson@email.com", Address: "654 Maple Dr, Antalya"},
		{Name: "Ayşe Demir", Phone: "0555-789-0123", Email: "ayse.demir@email.com", Address: "987 Cedar Ln, Adana"},
		{Name: "Sarah Wilson", Phone: "0555-234-5678", Email: "sarah.wilson@email.com", Address: "234 Birch St, Gaziantep"},
		{Name: "Mehmet Özkan", Phone: "0555-876-5432", Email: "mehmet.ozkan@email.com", Address: "876 Spruce Ave, Konya"},
	}

	for i := range patients {
		if err := s.patientRepo.Create(ctx, s.db, &patients[i]); err != nil {
			return err
		}
	}

	today := s.now()
	date := func(daysAhead int) time.Time {
		d := today.AddDate(0, 0, daysAhead)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	appointments := []entity.Appointment{
		{PatientName: "John Doe", AppointmentDate: date(1), AppointmentTime: "09:00", Treatment: "Regular Checkup", Status: entity.StatusScheduled},
		{PatientName: "Jane Smith", AppointmentDate: date(1), AppointmentTime: "10:30", Treatment: "Teeth Cleaning", Status: entity.StatusScheduled},
		{PatientName: "Ahmet Yılmaz", AppointmentDate: date(2), AppointmentTime: "14:00", Treatment: "Tooth Filling", Status: entity.StatusScheduled},
		{PatientName: "Fatma Kaya", AppointmentDate: date(2), AppointmentTime: "15:30", Treatment: "Root Canal", Status: entity.StatusScheduled},
		{PatientName: "Mike Johnson", AppointmentDate: date(3), AppointmentTime: "09:30", Treatment: "Orthodontic Consultation", Status: entity.StatusScheduled},
		{PatientName: "Ayşe Demir", AppointmentDate: date(3), AppointmentTime: "11:00", Treatment: "Wisdom Tooth Extraction", Status: entity.StatusScheduled},
		{PatientName: "Sarah Wilson", AppointmentDate: date(4), AppointmentTime: "13:30", Treatment: "Dental Implant Consultation", Status: entity.StatusScheduled},
		{PatientName: "Mehmet Özkan", AppointmentDate: date(5), AppointmentTime: "10:00", Treatment: "Periodontal Treatment", Status: entity.StatusScheduled},
		{PatientName: "John Doe", AppointmentDate: date(7), AppointmentTime: "14:30", Treatment: "Follow-up Checkup", Status: entity.StatusScheduled},
		{PatientName: "Jane Smith", AppointmentDate: date(8), AppointmentTime: "16:00", Treatment: "Teeth Whitening", Status: entity.StatusScheduled},
	}

	for i := range appointments {
		if err := s.appointmentRepo.Create(ctx, s.db, &appointments[i]); err != nil {
			return err
		}
	}

	s.log.Infof("Sample data added: %d patients, %d appointments", len(patients), len(appointments))

	return nil
}

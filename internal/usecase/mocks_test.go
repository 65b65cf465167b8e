package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeClock is a settable clock shared between a test, the usecase under
// test and the mock repositories.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// 2025-09-01 is a Monday, which keeps the week-window tests readable.
func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)}
}

func dateOn(c *fakeClock, daysAhead int) string {
	return c.t.AddDate(0, 0, daysAhead).Format("2006-01-02")
}

// -- Mock patient repository --

type mockPatientRepo struct {
	patients map[int64]*entity.Patient
	nextID   int64
	now      func() time.Time
	err      error
}

func newMockPatientRepo(now func() time.Time) *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*entity.Patient), now: now}
}

func (m *mockPatientRepo) Create(_ context.Context, _ *gorm.DB, patient *entity.Patient) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	patient.ID = m.nextID
	patient.CreatedAt = m.now()
	patient.UpdatedAt = m.now()
	stored := *patient
	m.patients[patient.ID] = &stored
	return nil
}

func (m *mockPatientRepo) Update(_ context.Context, _ *gorm.DB, patient *entity.Patient) error {
	if m.err != nil {
		return m.err
	}
	patient.UpdatedAt = m.now()
	stored := *patient
	m.patients[patient.ID] = &stored
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, _ *gorm.DB, id int64) (*entity.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	patient, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	found := *patient
	return &found, nil
}

func (m *mockPatientRepo) FindAll(_ context.Context, _ *gorm.DB) ([]entity.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.collect(func(*entity.Patient) bool { return true }), nil
}

func (m *mockPatientRepo) FindByPhone(_ context.Context, _ *gorm.DB, phone string) (*entity.Patient, error) {
	for _, p := range m.patients {
		if p.Phone == phone {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockPatientRepo) FindByEmail(_ context.Context, _ *gorm.DB, email string) (*entity.Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockPatientRepo) ExistsByID(_ context.Context, _ *gorm.DB, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockPatientRepo) ExistsByPhone(_ context.Context, _ *gorm.DB, phone string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, p := range m.patients {
		if p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPatientRepo) ExistsByEmail(_ context.Context, _ *gorm.DB, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, p := range m.patients {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPatientRepo) SearchByName(_ context.Context, _ *gorm.DB, name string) ([]entity.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	fragment := strings.ToLower(name)
	return m.collect(func(p *entity.Patient) bool {
		return strings.Contains(strings.ToLower(p.Name), fragment)
	}), nil
}

func (m *mockPatientRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.patients)), nil
}

func (m *mockPatientRepo) FindRegisteredToday(_ context.Context, _ *gorm.DB) ([]entity.Patient, error) {
	today := m.now().Format("2006-01-02")
	return m.collect(func(p *entity.Patient) bool {
		return p.CreatedAt.Format("2006-01-02") == today
	}), nil
}

func (m *mockPatientRepo) FindRegisteredThisMonth(_ context.Context, _ *gorm.DB) ([]entity.Patient, error) {
	month := m.now().Format("2006-01")
	return m.collect(func(p *entity.Patient) bool {
		return p.CreatedAt.Format("2006-01") == month
	}), nil
}

func (m *mockPatientRepo) FindRecent(_ context.Context, _ *gorm.DB) ([]entity.Patient, error) {
	patients := m.collect(func(*entity.Patient) bool { return true })
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].CreatedAt.After(patients[j].CreatedAt)
	})
	if len(patients) > 10 {
		patients = patients[:10]
	}
	return patients, nil
}

func (m *mockPatientRepo) collect(keep func(*entity.Patient) bool) []entity.Patient {
	var out []entity.Patient
	for _, p := range m.patients {
		if keep(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// -- Mock appointment repository --

type mockAppointmentRepo struct {
	appointments map[int64]*entity.Appointment
	nextID       int64
	now          func() time.Time
	err          error
}

func newMockAppointmentRepo(now func() time.Time) *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*entity.Appointment), now: now}
}

func (m *mockAppointmentRepo) Create(_ context.Context, _ *gorm.DB, appointment *entity.Appointment) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	appointment.ID = m.nextID
	appointment.CreatedAt = m.now()
	appointment.UpdatedAt = m.now()
	stored := *appointment
	m.appointments[appointment.ID] = &stored
	return nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, _ *gorm.DB, appointment *entity.Appointment) error {
	if m.err != nil {
		return m.err
	}
	appointment.UpdatedAt = m.now()
	stored := *appointment
	m.appointments[appointment.ID] = &stored
	return nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, _ *gorm.DB, id int64) (*entity.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	found := *appointment
	return &found, nil
}

func (m *mockAppointmentRepo) FindAll(_ context.Context, _ *gorm.DB) ([]entity.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.collect(func(*entity.Appointment) bool { return true }), nil
}

func (m *mockAppointmentRepo) ExistsByID(_ context.Context, _ *gorm.DB, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.appointments[id]
	return ok, nil
}

func (m *mockAppointmentRepo) SearchByPatientName(_ context.Context, _ *gorm.DB, patientName string) ([]entity.Appointment, error) {
	fragment := strings.ToLower(patientName)
	return m.collect(func(a *entity.Appointment) bool {
		return strings.Contains(strings.ToLower(a.PatientName), fragment)
	}), nil
}

func (m *mockAppointmentRepo) FindByDate(_ context.Context, _ *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	day := date.Format("2006-01-02")
	return m.collect(func(a *entity.Appointment) bool {
		return a.AppointmentDate.Format("2006-01-02") == day
	}), nil
}

func (m *mockAppointmentRepo) FindByStatus(_ context.Context, _ *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return m.collect(func(a *entity.Appointment) bool { return a.Status == status }), nil
}

func (m *mockAppointmentRepo) CountByStatus(_ context.Context, _ *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, a := range m.appointments {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockAppointmentRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.appointments)), nil
}

func (m *mockAppointmentRepo) FindToday(_ context.Context, _ *gorm.DB) ([]entity.Appointment, error) {
	today := m.now().Format("2006-01-02")
	out := m.collect(func(a *entity.Appointment) bool {
		return a.AppointmentDate.Format("2006-01-02") == today
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentTime < out[j].AppointmentTime })
	return out, nil
}

func (m *mockAppointmentRepo) FindUpcoming(_ context.Context, _ *gorm.DB) ([]entity.Appointment, error) {
	today := m.now().Format("2006-01-02")
	out := m.collect(func(a *entity.Appointment) bool {
		return a.AppointmentDate.Format("2006-01-02") >= today
	})
	sortByDateTime(out)
	return out, nil
}

func (m *mockAppointmentRepo) FindByDateRange(_ context.Context, _ *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	from := start.Format("2006-01-02")
	to := end.Format("2006-01-02")
	out := m.collect(func(a *entity.Appointment) bool {
		day := a.AppointmentDate.Format("2006-01-02")
		return day >= from && day <= to
	})
	sortByDateTime(out)
	return out, nil
}

func (m *mockAppointmentRepo) FindThisMonth(_ context.Context, _ *gorm.DB) ([]entity.Appointment, error) {
	month := m.now().Format("2006-01")
	return m.collect(func(a *entity.Appointment) bool {
		return a.AppointmentDate.Format("2006-01") == month
	}), nil
}

func (m *mockAppointmentRepo) FindRecent(_ context.Context, _ *gorm.DB) ([]entity.Appointment, error) {
	out := m.collect(func(*entity.Appointment) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

func (m *mockAppointmentRepo) collect(keep func(*entity.Appointment) bool) []entity.Appointment {
	var out []entity.Appointment
	for _, a := range m.appointments {
		if keep(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortByDateTime(appointments []entity.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].AppointmentDate.Equal(appointments[j].AppointmentDate) {
			return appointments[i].AppointmentDate.Before(appointments[j].AppointmentDate)
		}
		return appointments[i].AppointmentTime < appointments[j].AppointmentTime
	})
}

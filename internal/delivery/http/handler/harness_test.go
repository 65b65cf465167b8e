package handler_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	deliveryhttp "dental-clinic-api/internal/delivery/http"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Stub usecases with overridable behavior per test. Unset funcs return
// empty results so routing tests do not have to stub everything.

type stubPatientUsecase struct {
	createFn  func(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	updateFn  func(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
	getByIDFn func(ctx context.Context, id int64) (*dto.PatientResponse, error)
	getAllFn  func(ctx context.Context) ([]dto.PatientResponse, error)
	searchFn  func(ctx context.Context, name string) ([]dto.PatientResponse, error)
	countFn   func(ctx context.Context) (int64, error)
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &dto.PatientResponse{ID: 1, Name: req.Name, Phone: req.Phone}, nil
}

func (s *stubPatientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return &dto.PatientResponse{ID: id, Name: req.Name, Phone: req.Phone}, nil
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &dto.PatientResponse{ID: id}, nil
}

func (s *stubPatientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return []dto.PatientResponse{}, nil
}

func (s *stubPatientUsecase) SearchByName(ctx context.Context, name string) ([]dto.PatientResponse, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, name)
	}
	return []dto.PatientResponse{}, nil
}

func (s *stubPatientUsecase) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *stubPatientUsecase) RegisteredToday(ctx context.Context) ([]dto.PatientResponse, error) {
	return []dto.PatientResponse{}, nil
}

func (s *stubPatientUsecase) RegisteredThisMonth(ctx context.Context) ([]dto.PatientResponse, error) {
	return []dto.PatientResponse{}, nil
}

func (s *stubPatientUsecase) Recent(ctx context.Context) ([]dto.PatientResponse, error) {
	return []dto.PatientResponse{}, nil
}

type stubAppointmentUsecase struct {
	createFn       func(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	updateFn       func(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	deleteFn       func(ctx context.Context, id int64) error
	updateStatusFn func(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error)
	getByIDFn      func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	byDateRangeFn  func(ctx context.Context, start, end time.Time) ([]dto.AppointmentResponse, error)
	todayFn        func(ctx context.Context) ([]dto.AppointmentResponse, error)
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &dto.AppointmentResponse{ID: 1, PatientName: req.PatientName, Status: string(entity.StatusScheduled)}, nil
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return &dto.AppointmentResponse{ID: id, PatientName: req.PatientName}, nil
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error) {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return &dto.AppointmentResponse{ID: id, Status: status}, nil
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &dto.AppointmentResponse{ID: id}, nil
}

func (s *stubAppointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) SearchByPatient(ctx context.Context, patientName string) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) Today(ctx context.Context) ([]dto.AppointmentResponse, error) {
	if s.todayFn != nil {
		return s.todayFn(ctx)
	}
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) Upcoming(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) ThisWeek(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) ThisMonth(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) ByDateRange(ctx context.Context, start, end time.Time) ([]dto.AppointmentResponse, error) {
	if s.byDateRangeFn != nil {
		return s.byDateRangeFn(ctx, start, end)
	}
	return []dto.AppointmentResponse{}, nil
}

func (s *stubAppointmentUsecase) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *stubAppointmentUsecase) CountByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error) {
	return 0, nil
}

func (s *stubAppointmentUsecase) Recent(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return []dto.AppointmentResponse{}, nil
}

type stubDashboardUsecase struct {
	statsFn          func(ctx context.Context) (*dto.DashboardStats, error)
	recentActivityFn func(ctx context.Context) (*dto.RecentActivity, error)
	quickStatsFn     func(ctx context.Context) (*dto.QuickStats, error)
}

func (s *stubDashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx)
	}
	return &dto.DashboardStats{}, nil
}

func (s *stubDashboardUsecase) RecentActivity(ctx context.Context) (*dto.RecentActivity, error) {
	if s.recentActivityFn != nil {
		return s.recentActivityFn(ctx)
	}
	return &dto.RecentActivity{}, nil
}

func (s *stubDashboardUsecase) QuickStats(ctx context.Context) (*dto.QuickStats, error) {
	if s.quickStatsFn != nil {
		return s.quickStatsFn(ctx)
	}
	return &dto.QuickStats{}, nil
}

var (
	_ usecase.PatientUsecase     = (*stubPatientUsecase)(nil)
	_ usecase.AppointmentUsecase = (*stubAppointmentUsecase)(nil)
	_ usecase.DashboardUsecase   = (*stubDashboardUsecase)(nil)
)

type testRouter struct {
	router       *mux.Router
	patients     *stubPatientUsecase
	appointments *stubAppointmentUsecase
	dashboard    *stubDashboardUsecase
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	patients := &stubPatientUsecase{}
	appointments := &stubAppointmentUsecase{}
	dashboard := &stubDashboardUsecase{}

	r := deliveryhttp.NewRouter(
		handler.NewRootHandler(),
		handler.NewPatientHandler(patients, v),
		handler.NewAppointmentHandler(appointments, v),
		handler.NewDashboardHandler(dashboard),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	return &testRouter{
		router:       r.Setup(),
		patients:     patients,
		appointments: appointments,
		dashboard:    dashboard,
	}
}

func (tr *testRouter) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)
	return rec
}

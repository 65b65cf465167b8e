package usecase

import (
	"context"
	"encoding/json"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RevenuePerCompleted is the fixed unit price applied to every completed
	// appointment. This is an estimate for the dashboard, not billing.
	RevenuePerCompleted = 150

	statsCacheKey = "dashboard:stats"

	upcomingActivityLimit = 5
)

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	RecentActivity(ctx context.Context) (*dto.RecentActivity, error)
	QuickStats(ctx context.Context) (*dto.QuickStats, error)
}

// dashboardUsecase composes read-only statistics from the patient and
// appointment usecases. It owns no state of its own; the Redis client only
// caches Stats output and every cache failure falls back to computing.
type dashboardUsecase struct {
	log                *logrus.Logger
	patientUsecase     PatientUsecase
	appointmentUsecase AppointmentUsecase
	redisClient        *redis.Client
	statsTTL           time.Duration
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientUsecase PatientUsecase,
	appointmentUsecase AppointmentUsecase,
	redisClient *redis.Client,
	statsTTL time.Duration,
) DashboardUsecase {
	return &dashboardUsecase{
		log:                log,
		patientUsecase:     patientUsecase,
		appointmentUsecase: appointmentUsecase,
		redisClient:        redisClient,
		statsTTL:           statsTTL,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	if cached := u.cachedStats(ctx); cached != nil {
		return cached, nil
	}

	stats := &dto.DashboardStats{}

	totalPatients, err := u.patientUsecase.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalPatients = totalPatients

	patientsToday, err := u.patientUsecase.RegisteredToday(ctx)
	if err != nil {
		return nil, err
	}
	stats.NewPatientsToday = len(patientsToday)

	patientsThisMonth, err := u.patientUsecase.RegisteredThisMonth(ctx)
	if err != nil {
		return nil, err
	}
	stats.NewPatientsThisMonth = len(patientsThisMonth)

	totalAppointments, err := u.appointmentUsecase.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalAppointments = totalAppointments

	today, err := u.appointmentUsecase.Today(ctx)
	if err != nil {
		return nil, err
	}
	stats.TodayAppointments = len(today)

	week, err := u.appointmentUsecase.ThisWeek(ctx)
	if err != nil {
		return nil, err
	}
	stats.WeekAppointments = len(week)

	month, err := u.appointmentUsecase.ThisMonth(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthAppointments = len(month)

	upcoming, err := u.appointmentUsecase.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	stats.UpcomingAppointments = len(upcoming)

	byStatus := make(map[entity.AppointmentStatus]int64, len(entity.AllStatuses))
	for _, status := range entity.AllStatuses {
		count, err := u.appointmentUsecase.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		byStatus[status] = count
	}
	stats.ScheduledAppointments = byStatus[entity.StatusScheduled]
	stats.ConfirmedAppointments = byStatus[entity.StatusConfirmed]
	stats.InProgressAppointments = byStatus[entity.StatusInProgress]
	stats.CompletedAppointments = byStatus[entity.StatusCompleted]
	stats.CancelledAppointments = byStatus[entity.StatusCancelled]
	stats.NoShowAppointments = byStatus[entity.StatusNoShow]
	stats.RescheduledAppointments = byStatus[entity.StatusRescheduled]

	stats.EstimatedRevenue = stats.CompletedAppointments * RevenuePerCompleted
	stats.PatientGrowthRate = growthRate(stats.NewPatientsThisMonth)
	stats.AppointmentCompletionRate = completionRate(stats.CompletedAppointments, stats.TotalAppointments)

	u.cacheStats(ctx, stats)

	return stats, nil
}

func (u *dashboardUsecase) RecentActivity(ctx context.Context) (*dto.RecentActivity, error) {
	recentPatients, err := u.patientUsecase.Recent(ctx)
	if err != nil {
		return nil, err
	}

	recentAppointments, err := u.appointmentUsecase.Recent(ctx)
	if err != nil {
		return nil, err
	}

	todayAppointments, err := u.appointmentUsecase.Today(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointmentUsecase.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	if len(upcoming) > upcomingActivityLimit {
		upcoming = upcoming[:upcomingActivityLimit]
	}

	return &dto.RecentActivity{
		RecentPatients:       recentPatients,
		RecentAppointments:   recentAppointments,
		TodayAppointments:    todayAppointments,
		UpcomingAppointments: upcoming,
	}, nil
}

func (u *dashboardUsecase) QuickStats(ctx context.Context) (*dto.QuickStats, error) {
	patients, err := u.patientUsecase.Count(ctx)
	if err != nil {
		return nil, err
	}

	today, err := u.appointmentUsecase.Today(ctx)
	if err != nil {
		return nil, err
	}

	week, err := u.appointmentUsecase.ThisWeek(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := u.appointmentUsecase.CountByStatus(ctx, entity.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.QuickStats{
		Patients:          patients,
		TodayAppointments: len(today),
		WeekAppointments:  len(week),
		Revenue:           completed * RevenuePerCompleted,
	}, nil
}

func (u *dashboardUsecase) cachedStats(ctx context.Context) *dto.DashboardStats {
	if u.redisClient == nil {
		return nil
	}

	payload, err := u.redisClient.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read stats cache: %+v", err)
		}
		return nil
	}

	var stats dto.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		u.log.Warnf("Failed to decode stats cache: %+v", err)
		return nil
	}
	return &stats
}

func (u *dashboardUsecase) cacheStats(ctx context.Context, stats *dto.DashboardStats) {
	if u.redisClient == nil || u.statsTTL <= 0 {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		u.log.Warnf("Failed to encode stats cache: %+v", err)
		return
	}
	if err := u.redisClient.Set(ctx, statsCacheKey, payload, u.statsTTL).Err(); err != nil {
		u.log.Warnf("Failed to write stats cache: %+v", err)
	}
}

// growthRate keeps the upstream definition verbatim: the "rate" is 100 when
// anything registered this month and 0 otherwise. It is not a
// period-over-period comparison.
func growthRate(newThisMonth int) float64 {
	if newThisMonth > 0 {
		return 100.0
	}
	return 0.0
}

func completionRate(completed, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	return float64(completed) * 100.0 / float64(total)
}

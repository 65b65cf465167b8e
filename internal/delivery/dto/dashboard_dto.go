package dto

// DashboardStats aggregates counts and ratios over both entities.
//
// EstimatedRevenue is completed appointments times a fixed unit price, not a
// billing figure. PatientGrowthRate keeps the upstream definition: 100.0
// whenever any patient registered this month, 0.0 otherwise.
type DashboardStats struct {
	TotalPatients        int64 `json:"totalPatients"`
	NewPatientsToday     int   `json:"newPatientsToday"`
	NewPatientsThisMonth int   `json:"newPatientsThisMonth"`

	TotalAppointments    int64 `json:"totalAppointments"`
	TodayAppointments    int   `json:"todayAppointments"`
	WeekAppointments     int   `json:"weekAppointments"`
	MonthAppointments    int   `json:"monthAppointments"`
	UpcomingAppointments int   `json:"upcomingAppointments"`

	ScheduledAppointments   int64 `json:"scheduledAppointments"`
	ConfirmedAppointments   int64 `json:"confirmedAppointments"`
	InProgressAppointments  int64 `json:"inProgressAppointments"`
	CompletedAppointments   int64 `json:"completedAppointments"`
	CancelledAppointments   int64 `json:"cancelledAppointments"`
	NoShowAppointments      int64 `json:"noShowAppointments"`
	RescheduledAppointments int64 `json:"rescheduledAppointments"`

	EstimatedRevenue          int64   `json:"estimatedRevenue"`
	PatientGrowthRate         float64 `json:"patientGrowthRate"`
	AppointmentCompletionRate float64 `json:"appointmentCompletionRate"`
}

type RecentActivity struct {
	RecentPatients       []PatientResponse     `json:"recentPatients"`
	RecentAppointments   []AppointmentResponse `json:"recentAppointments"`
	TodayAppointments    []AppointmentResponse `json:"todayAppointments"`
	UpcomingAppointments []AppointmentResponse `json:"upcomingAppointments"`
}

type QuickStats struct {
	Patients          int64 `json:"patients"`
	TodayAppointments int   `json:"todayAppointments"`
	WeekAppointments  int   `json:"weekAppointments"`
	Revenue           int64 `json:"revenue"`
}

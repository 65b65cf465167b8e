package handler

import (
	"net/http"

	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.dashboardUsecase.RecentActivity(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, activity)
}

func (h *DashboardHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.QuickStats(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

package handler

import (
	"net/http"
	"time"

	"dental-clinic-api/pkg/response"
)

const apiVersion = "1.0.0"

// RootHandler serves the service banner and the connectivity probe.
type RootHandler struct {
}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Home(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to Dental Clinic API",
		"version": apiVersion,
		"status":  "READY",
		"endpoints": map[string]string{
			"patients":     "/api/patients",
			"appointments": "/api/appointments",
			"dashboard":    "/api/dashboard",
			"test":         "/api/test",
		},
	})
}

func (h *RootHandler) APITest(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":   "API is working correctly",
		"timestamp": time.Now().UTC(),
		"status":    "OK",
		"version":   apiVersion,
	})
}

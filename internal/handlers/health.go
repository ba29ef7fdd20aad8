package handlers

import "net/http"

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Root answers the bare root path with a running message.
func Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Student Collaboration Hub API is running",
	})
}

// Healthz is the liveness probe. It always reports ok.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Student Collaboration Hub API is running",
	})
}

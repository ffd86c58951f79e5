package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/autotrack-server/internal/logging"
)

const (
	apiName    = "AutoTrack API"
	apiVersion = "1.0.0"
	docsPath   = "/docs"
)

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

// Root describes the running API.
func (h *Handler) Root(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	return writeJSON(w, req, RootResponse{
		Message: apiName + " is running",
		Version: apiVersion,
		Docs:    docsPath,
	})
}

// Health reports liveness only; it does not touch the database.
func (h *Handler) Health(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	return writeJSON(w, req, HealthResponse{Status: "healthy"})
}

func writeJSON(w http.ResponseWriter, req *http.Request, body interface{}) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}

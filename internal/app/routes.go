package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Syllabus processing
	r.HandleFunc("/api/syllabus/process", deps.PipelineHandler.ProcessSyllabus).Methods("POST")

	// Calendar export
	r.HandleFunc("/api/syllabus/export", deps.IcsHandler.ExportCalendar).Methods("POST")
	r.HandleFunc("/api/syllabus/export/event", deps.IcsHandler.ExportEvent).Methods("POST")

	// Google Calendar integration
	r.HandleFunc("/api/integrations/google/events", deps.GoogleHandler.CreateEvents).Methods("POST")
	r.HandleFunc("/api/integrations/google/event", deps.GoogleHandler.CreateEvent).Methods("POST")

	// Health check
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")
}

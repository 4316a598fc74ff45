package gcal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/syllacal/syllacal/internal/rest"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createEventsRequest struct {
	Assignments []syllabus.Event     `json:"assignments"`
	CourseInfo  *syllabus.CourseInfo `json:"courseInfo"`
}

type createEventRequest struct {
	Assignment *syllabus.Event      `json:"assignment"`
	CourseInfo *syllabus.CourseInfo `json:"courseInfo"`
}

type createEventsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Created int    `json:"created"`
	Failed  int    `json:"failed"`
}

// CreateEvents syncs a batch of events to the user's Google Calendar. The
// bearer credential comes from the Authorization header on every request;
// nothing is cached server-side.
func (h *Handler) CreateEvents(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token is required", "")
		return
	}

	var req createEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Assignments == nil {
		writeError(w, http.StatusBadRequest, "Assignments array is required", "")
		return
	}

	result, err := h.service.CreateEvents(r.Context(), token, req.Assignments, req.CourseInfo)
	if err != nil {
		if errors.Is(err, ErrAuthExpired) {
			writeError(w, http.StatusUnauthorized, "Authentication expired. Please re-authenticate.", "")
			return
		}
		log.Errorf("google calendar sync failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to interact with Google Calendar", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(createEventsResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully created %d events. %d events failed.", result.Created, result.Failed),
		Created: result.Created,
		Failed:  result.Failed,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateEvent syncs a single event.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token is required", "")
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Assignment == nil {
		writeError(w, http.StatusBadRequest, "Assignment is required", "")
		return
	}

	if err := h.service.CreateEvent(r.Context(), token, *req.Assignment, req.CourseInfo); err != nil {
		if errors.Is(err, ErrAuthExpired) {
			writeError(w, http.StatusUnauthorized, "Authentication expired. Please re-authenticate.", "")
			return
		}
		log.Errorf("google calendar event creation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to interact with Google Calendar", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Event created successfully in Google Calendar",
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

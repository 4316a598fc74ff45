package ics

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/syllacal/syllacal/internal/rest"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

type Handler struct {
	encoder *Encoder
}

func NewHandler(encoder *Encoder) *Handler {
	return &Handler{encoder: encoder}
}

type exportRequest struct {
	Assignments []syllabus.Event    `json:"assignments"`
	CourseInfo  syllabus.CourseInfo `json:"courseInfo"`
}

type exportEventRequest struct {
	Assignment *syllabus.Event     `json:"assignment"`
	CourseInfo syllabus.CourseInfo `json:"courseInfo"`
}

// ExportCalendar serves a full batch as a downloadable .ics file.
func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Assignments == nil {
		writeError(w, http.StatusBadRequest, "Invalid assignments data", "'assignments' must be an array")
		return
	}

	content, err := h.encoder.EncodeCalendar(req.Assignments, req.CourseInfo)
	if err != nil {
		log.Errorf("calendar export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Calendar export failed", err.Error())
		return
	}

	writeCalendar(w, content, req.CourseInfo.Title)
}

// ExportEvent serves one event as a single-entry calendar file.
func (h *Handler) ExportEvent(w http.ResponseWriter, r *http.Request) {
	var req exportEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Assignment == nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment data", "'assignment' is required")
		return
	}

	content, err := h.encoder.EncodeEvent(*req.Assignment, req.CourseInfo)
	if err != nil {
		log.Errorf("event export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Calendar export failed", err.Error())
		return
	}

	writeCalendar(w, content, req.Assignment.Title)
}

func writeCalendar(w http.ResponseWriter, content, name string) {
	if name == "" {
		name = "syllabus"
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"-calendar.ics"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		log.Errorf("failed to write calendar response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package pipeline

import (
	"encoding/json"
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

type processRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

type processResponse struct {
	Success      bool                        `json:"success"`
	Data         *syllabus.ProcessedSyllabus `json:"data"`
	Origin       syllabus.Origin             `json:"origin"`
	IsSampleData bool                        `json:"isSampleData"`
	Notice       string                      `json:"notice,omitempty"`
}

// ProcessSyllabus accepts raw extracted document text and returns the
// structured result. Text extraction from PDFs happens upstream; this
// endpoint only consumes plain text.
func (h *Handler) ProcessSyllabus(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "No syllabus text provided",
			Details: "'text' must contain the extracted document text",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if req.Filename != "" {
		log.Debugf("processing syllabus from %s", req.Filename)
	}

	result := h.service.Process(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(processResponse{
		Success:      true,
		Data:         result.Syllabus,
		Origin:       result.Origin,
		IsSampleData: result.Origin == syllabus.CannedSample,
		Notice:       result.Notice,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

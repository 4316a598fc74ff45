package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/syllacal/syllacal/internal/config"
	"github.com/syllacal/syllacal/internal/utils"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

// FailureKind tags the three ways structured extraction can fail. The
// pipeline matches on it to decide fallback behavior; none of these kinds
// ever reach the pipeline's caller.
type FailureKind int

const (
	// ExtractionFailure covers network, auth and other transport errors
	// contacting the language model.
	ExtractionFailure FailureKind = iota
	// SchemaViolation means the response parsed as JSON but is missing
	// courseInfo or assignments, or they have the wrong type.
	SchemaViolation
	// ParseFailure means the response is not valid JSON even after fence
	// and brace stripping.
	ParseFailure
)

func (k FailureKind) String() string {
	switch k {
	case ExtractionFailure:
		return "extraction failure"
	case SchemaViolation:
		return "schema violation"
	case ParseFailure:
		return "parse failure"
	}
	return "unknown failure"
}

// ErrInputTooLong marks an ExtractionFailure caused by the model's context
// length limit, so callers can tell it apart from a parse problem.
var ErrInputTooLong = errors.New("input exceeds model context length")

// Error is the tagged extraction result for the failure cases.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Extractor converts normalized syllabus text into a structured result.
type Extractor interface {
	Extract(ctx context.Context, text string) (*syllabus.ProcessedSyllabus, error)
}

// completionClient is the subset of the OpenAI client the extractor uses.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var _ completionClient = (*openai.Client)(nil)
var _ Extractor = (*OpenAIExtractor)(nil)

// OpenAIExtractor asks a chat model to extract events under a strict JSON
// schema and defensively repairs its textual output.
type OpenAIExtractor struct {
	client      completionClient
	model       string
	temperature float32
	maxTokens   int
	year        int
	clock       utils.Clock
}

func NewOpenAIExtractor(cfg config.Application, clock utils.Clock) *OpenAIExtractor {
	return &OpenAIExtractor{
		client:      openai.NewClient(cfg.OpenAI.ApiKey),
		model:       cfg.OpenAI.Model,
		temperature: cfg.OpenAI.Temperature,
		maxTokens:   cfg.OpenAI.MaxTokens,
		year:        cfg.Academic.Year,
		clock:       clock,
	}
}

// rawAssignment mirrors the schema the model is instructed to produce.
// IsRequired is a pointer so that an absent field can default to true:
// syllabus activities are mandatory unless explicitly marked optional.
type rawAssignment struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsRequired  *bool  `json:"isRequired"`
	TimeStart   string `json:"timeStart"`
	TimeEnd     string `json:"timeEnd"`
}

// Extract sends the syllabus text to the model and parses the response into
// a ProcessedSyllabus. All failures are returned as *Error; the pipeline
// routes every kind to the heuristic fallback.
func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (*syllabus.ProcessedSyllabus, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text, e.year),
			},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if code, ok := apiErr.Code.(string); ok && code == "context_length_exceeded" {
				return nil, &Error{Kind: ExtractionFailure, Err: fmt.Errorf("%w: %v", ErrInputTooLong, err)}
			}
		}
		return nil, &Error{Kind: ExtractionFailure, Err: fmt.Errorf("openai request failed: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: ExtractionFailure, Err: errors.New("no response choices from model")}
	}

	return e.parseResponse(resp.Choices[0].Message.Content)
}

// parseResponse treats the model output as untrusted text: it strips code
// fences, isolates the outermost JSON object, and validates the schema.
func (e *OpenAIExtractor) parseResponse(response string) (*syllabus.ProcessedSyllabus, error) {
	cleaned := isolateJSONObject(stripCodeFences(response))
	if cleaned == "" {
		return nil, &Error{Kind: ParseFailure, Err: errors.New("no JSON object found in model response")}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, &Error{Kind: ParseFailure, Err: fmt.Errorf("model response is not valid JSON: %w", err)}
	}

	rawCourse, ok := top["courseInfo"]
	if !ok {
		return nil, &Error{Kind: SchemaViolation, Err: errors.New("response is missing courseInfo")}
	}
	rawAssignments, ok := top["assignments"]
	if !ok {
		return nil, &Error{Kind: SchemaViolation, Err: errors.New("response is missing assignments")}
	}

	var courseInfo syllabus.CourseInfo
	if err := json.Unmarshal(rawCourse, &courseInfo); err != nil {
		return nil, &Error{Kind: SchemaViolation, Err: fmt.Errorf("courseInfo is not an object: %w", err)}
	}
	var assignments []rawAssignment
	if err := json.Unmarshal(rawAssignments, &assignments); err != nil {
		return nil, &Error{Kind: SchemaViolation, Err: fmt.Errorf("assignments is not an array: %w", err)}
	}

	ids := syllabus.NewIDGenerator(e.clock.Now)
	events := make([]syllabus.Event, 0, len(assignments))
	for _, a := range assignments {
		required := true
		if a.IsRequired != nil {
			required = *a.IsRequired
		}
		id := a.ID
		if id == "" {
			id = ids.Next()
		}
		events = append(events, syllabus.Event{
			ID:          id,
			Date:        a.Date,
			Title:       a.Title,
			Type:        syllabus.EventType(a.Type),
			Description: a.Description,
			IsRequired:  required,
			TimeStart:   a.TimeStart,
			TimeEnd:     a.TimeEnd,
		})
	}

	log.Debugf("extracted %d assignments for course %q", len(events), courseInfo.Title)
	return &syllabus.ProcessedSyllabus{
		CourseInfo:  courseInfo,
		Assignments: events,
		Success:     true,
	}, nil
}

// stripCodeFences removes a surrounding markdown code block, if present.
func stripCodeFences(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// isolateJSONObject cuts the substring from the first '{' to the last '}',
// discarding any commentary the model wrapped around the object. Returns ""
// when no object delimiters are present.
func isolateJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}

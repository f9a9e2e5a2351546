package entities

import "time"

const (
	// FallbackSummary is returned whenever extraction cannot complete
	FallbackSummary = "Unable to analyze meeting notes. Please try again."
	// DefaultSummary is used when the model omits the summary
	DefaultSummary = "No summary available"
)

// AnalysisResult represents the structured output extracted from meeting notes.
// All four fields are always populated; absence of content is an empty slice.
type AnalysisResult struct {
	Summary     string                `json:"summary"`
	ActionItems []ExtractedActionItem `json:"action_items"`
	Decisions   []string              `json:"decisions"`
	KeyPoints   []string              `json:"key_points"`
}

// ExtractedActionItem represents an action item as returned by the model
type ExtractedActionItem struct {
	Task       string  `json:"task"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"` // free text, never interpreted as a date
}

// FallbackAnalysis returns the fixed result used for every extraction failure
func FallbackAnalysis() AnalysisResult {
	return AnalysisResult{
		Summary:     FallbackSummary,
		ActionItems: []ExtractedActionItem{},
		Decisions:   []string{},
		KeyPoints:   []string{},
	}
}

// AnalysisStatus constants
const (
	AnalysisStatusCompleted = "completed"
	AnalysisStatusFallback  = "fallback"
)

// Fallback reasons
const (
	FallbackReasonTransport = "transport_error"
	FallbackReasonEmpty     = "empty_response"
	FallbackReasonMalformed = "malformed_response"
)

// AnalysisOutcome describes how an analysis was produced. It is diagnostic only:
// the AnalysisResult shape does not depend on it.
type AnalysisOutcome struct {
	Status    string        `json:"status"`
	Reason    string        `json:"reason,omitempty"`
	Model     string        `json:"model,omitempty"`
	Latency   time.Duration `json:"-"`
	LatencyMs int64         `json:"latency_ms"`
}

// IsFallback reports whether the fallback result was returned
func (o AnalysisOutcome) IsFallback() bool {
	return o.Status == AnalysisStatusFallback
}

package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("\\s*```$")
)

// Sanitize strips markdown code fences the model may wrap its JSON in.
// Stripping repeats until nothing changes, so Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := strings.TrimSpace(trailingFence.ReplaceAllString(leadingFence.ReplaceAllString(s, ""), ""))
		if next == s {
			return s
		}
		s = next
	}
}

// rawAnalysis mirrors the model reply; pointers tell missing keys from empty ones
type rawAnalysis struct {
	Summary     *string         `json:"summary"`
	ActionItems []rawActionItem `json:"action_items"`
	Decisions   []string        `json:"decisions"`
	KeyPoints   []string        `json:"key_points"`
}

type rawActionItem struct {
	Task       string  `json:"task"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"`
}

// ParseAnalysis decodes a sanitized model reply into a normalized AnalysisResult.
// The reply must be a single JSON object; values of the wrong type are rejected.
func ParseAnalysis(content string) (*entities.AnalysisResult, error) {
	content = Sanitize(content)
	if !strings.HasPrefix(content, "{") {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	result := &entities.AnalysisResult{
		Summary:     entities.DefaultSummary,
		ActionItems: make([]entities.ExtractedActionItem, 0, len(raw.ActionItems)),
		Decisions:   nonBlank(raw.Decisions),
		KeyPoints:   nonBlank(raw.KeyPoints),
	}
	if raw.Summary != nil {
		if s := strings.TrimSpace(*raw.Summary); s != "" {
			result.Summary = s
		}
	}

	for _, item := range raw.ActionItems {
		task := strings.TrimSpace(item.Task)
		if task == "" {
			continue
		}
		result.ActionItems = append(result.ActionItems, entities.ExtractedActionItem{
			Task:       task,
			AssignedTo: trimmedOrNil(item.AssignedTo),
			Deadline:   trimmedOrNil(item.Deadline),
		})
	}

	return result, nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

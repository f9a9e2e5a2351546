package ai

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
)

// Completer sends a prompt to a text-generation model and returns its reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Analyzer extracts structured data from raw meeting notes
type Analyzer interface {
	// Analyze never fails: any extraction problem yields entities.FallbackAnalysis.
	// The outcome explains how the result was produced.
	Analyze(ctx context.Context, rawNotes string) (entities.AnalysisResult, entities.AnalysisOutcome)
}

type notesAnalyzer struct {
	llm     Completer
	model   string
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewAnalyzer constructs the notes analyzer. m may be nil.
func NewAnalyzer(llm Completer, model string, m *metrics.Metrics, logger *zap.Logger) Analyzer {
	return &notesAnalyzer{
		llm:     llm,
		model:   model,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (a *notesAnalyzer) Analyze(ctx context.Context, rawNotes string) (entities.AnalysisResult, entities.AnalysisOutcome) {
	prompt := BuildExtractionPrompt(rawNotes)

	start := a.now()
	reply, err := a.llm.Complete(ctx, prompt)
	latency := a.now().Sub(start)

	outcome := entities.AnalysisOutcome{
		Status:    entities.AnalysisStatusCompleted,
		Model:     a.model,
		Latency:   latency,
		LatencyMs: latency.Milliseconds(),
	}

	if err != nil {
		return a.fallback(outcome, entities.FallbackReasonTransport, zap.Error(err))
	}
	if strings.TrimSpace(reply) == "" {
		return a.fallback(outcome, entities.FallbackReasonEmpty)
	}

	result, err := ParseAnalysis(reply)
	if err != nil {
		return a.fallback(outcome, entities.FallbackReasonMalformed,
			zap.Error(err),
			zap.String("reply_preview", preview(reply)),
		)
	}

	a.metrics.ObserveAnalysis(outcome.Status, outcome.Reason, latency)
	a.logger.Info("✅ Meeting notes analyzed",
		zap.String("model", a.model),
		zap.Duration("latency", latency),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Int("decisions", len(result.Decisions)),
		zap.Int("key_points", len(result.KeyPoints)),
	)
	return *result, outcome
}

func (a *notesAnalyzer) fallback(outcome entities.AnalysisOutcome, reason string, fields ...zap.Field) (entities.AnalysisResult, entities.AnalysisOutcome) {
	outcome.Status = entities.AnalysisStatusFallback
	outcome.Reason = reason

	a.metrics.ObserveAnalysis(outcome.Status, outcome.Reason, outcome.Latency)
	a.logger.Warn("⚠️ Meeting notes analysis fell back",
		append([]zap.Field{
			zap.String("reason", reason),
			zap.String("model", a.model),
			zap.Duration("latency", outcome.Latency),
		}, fields...)...,
	)
	return entities.FallbackAnalysis(), outcome
}

const previewLen = 200

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}

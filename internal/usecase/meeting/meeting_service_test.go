package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/errors"
)

type stubAnalyzer struct {
	result  entities.AnalysisResult
	outcome entities.AnalysisOutcome
	calls   int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, rawNotes string) (entities.AnalysisResult, entities.AnalysisOutcome) {
	s.calls++
	return s.result, s.outcome
}

func strPtr(s string) *string { return &s }

var fixedNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, analyzer *stubAnalyzer) (*MeetingService, *metrics.Metrics) {
	t.Helper()
	db := databasetest.New(t)
	m := metrics.New()
	svc := NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewActionItemRepository(db),
		analyzer,
		m,
		zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
	)
	return svc, m
}

func completedAnalysis() *stubAnalyzer {
	return &stubAnalyzer{
		result: entities.AnalysisResult{
			Summary: "Kickoff for the billing rewrite.",
			ActionItems: []entities.ExtractedActionItem{
				{Task: "Draft schema", AssignedTo: strPtr("Alice"), Deadline: strPtr("Friday")},
				{Task: "Review vendors", Deadline: strPtr("2025-07-01")},
			},
			Decisions: []string{"Use Postgres"},
			KeyPoints: []string{"Legacy system is EOL", "Budget approved"},
		},
		outcome: entities.AnalysisOutcome{Status: entities.AnalysisStatusCompleted, Model: "m", LatencyMs: 42},
	}
}

func TestCreateMeeting(t *testing.T) {
	analyzer := completedAnalysis()
	svc, m := newTestService(t, analyzer)
	ctx := context.Background()

	out, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Billing kickoff", RawNotes: "notes"})
	require.NoError(t, err)

	assert.NotZero(t, out.MeetingID)
	assert.Equal(t, "Billing kickoff", out.Title)
	assert.Equal(t, "Kickoff for the billing rewrite.", out.Summary)
	assert.True(t, out.Date.Equal(fixedNow))
	assert.Equal(t, 2, out.ActionItemsCount)
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MeetingsCreatedTotal))

	got, err := svc.GetMeeting(ctx, out.MeetingID)
	require.NoError(t, err)
	require.Len(t, got.ActionItems, 2)
	for _, item := range got.ActionItems {
		assert.Equal(t, entities.ActionItemStatusPending, item.Status)
		assert.Nil(t, item.Deadline, "deadlines are never stored")
	}
	assert.Equal(t, "Alice", *got.ActionItems[0].AssignedTo)
	assert.Nil(t, got.ActionItems[1].AssignedTo)
	require.Len(t, got.Decisions, 1)
	assert.Equal(t, "Use Postgres", got.Decisions[0].Decision)
	require.Len(t, got.KeyPoints, 2)

	var meta entities.AnalysisOutcome
	require.NoError(t, json.Unmarshal(got.AnalysisMeta, &meta))
	assert.Equal(t, entities.AnalysisStatusCompleted, meta.Status)
	assert.Equal(t, int64(42), meta.LatencyMs)
}

func TestCreateMeeting_FallbackStillPersists(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  entities.FallbackAnalysis(),
		outcome: entities.AnalysisOutcome{Status: entities.AnalysisStatusFallback, Reason: entities.FallbackReasonTransport},
	}
	svc, _ := newTestService(t, analyzer)
	ctx := context.Background()

	out, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Offline", RawNotes: "notes"})
	require.NoError(t, err)
	assert.Equal(t, entities.FallbackSummary, out.Summary)
	assert.Zero(t, out.ActionItemsCount)
	assert.True(t, out.Analysis.IsFallback())

	got, err := svc.GetMeeting(ctx, out.MeetingID)
	require.NoError(t, err)
	assert.Empty(t, got.ActionItems)
	assert.Empty(t, got.Decisions)
	assert.Empty(t, got.KeyPoints)
	assert.JSONEq(t, `{"status":"fallback","reason":"transport_error","latency_ms":0}`, string(got.AnalysisMeta))
}

func TestCreateMeeting_PersistsAfterClientCancel(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  entities.FallbackAnalysis(),
		outcome: entities.AnalysisOutcome{Status: entities.AnalysisStatusFallback, Reason: entities.FallbackReasonTransport},
	}
	svc, m := newTestService(t, analyzer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Dropped", RawNotes: "notes"})
	require.NoError(t, err)
	assert.Equal(t, entities.FallbackSummary, out.Summary)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MeetingsCreatedTotal))

	got, err := svc.GetMeeting(context.Background(), out.MeetingID)
	require.NoError(t, err)
	assert.Equal(t, "Dropped", got.Title)
}

func TestCreateMeeting_ValidationHappensFirst(t *testing.T) {
	tests := []struct {
		name  string
		input CreateMeetingInput
		want  error
	}{
		{"missing title", CreateMeetingInput{RawNotes: "notes"}, usecaseErrors.ErrTitleRequired},
		{"blank title", CreateMeetingInput{Title: "   ", RawNotes: "notes"}, usecaseErrors.ErrTitleRequired},
		{"missing notes", CreateMeetingInput{Title: "Sync"}, usecaseErrors.ErrRawNotesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := completedAnalysis()
			svc, _ := newTestService(t, analyzer)

			out, err := svc.CreateMeeting(context.Background(), tt.input)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
			assert.Zero(t, analyzer.calls, "analysis must not run on invalid input")

			meetings, err := svc.ListMeetings(context.Background())
			require.NoError(t, err)
			assert.Empty(t, meetings)
		})
	}
}

func TestListMeetingsAndActionItems(t *testing.T) {
	svc, _ := newTestService(t, completedAnalysis())
	ctx := context.Background()

	out, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Planning", RawNotes: "notes"})
	require.NoError(t, err)

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, 2, meetings[0].ActionItemsCount)
	assert.Equal(t, 2, meetings[0].PendingTasks)

	items, err := svc.ListActionItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotNil(t, item.Meeting)
		assert.Equal(t, "Planning", item.Meeting.Title)
		assert.Equal(t, out.MeetingID, item.MeetingID)
	}
}

func TestCompleteActionItem(t *testing.T) {
	svc, m := newTestService(t, completedAnalysis())
	ctx := context.Background()

	out, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Planning", RawNotes: "notes"})
	require.NoError(t, err)
	got, err := svc.GetMeeting(ctx, out.MeetingID)
	require.NoError(t, err)

	item, err := svc.CompleteActionItem(ctx, got.ActionItems[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ActionItemStatusCompleted, item.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActionItemsCompleted))

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, meetings[0].ActionItemsCount)
	assert.Equal(t, 1, meetings[0].PendingTasks)

	_, err = svc.CompleteActionItem(ctx, 9999)
	assert.True(t, errors.Is(err, entities.ErrActionItemNotFound))
}

func TestGetMeeting_NotFound(t *testing.T) {
	svc, _ := newTestService(t, completedAnalysis())

	_, err := svc.GetMeeting(context.Background(), 12345)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

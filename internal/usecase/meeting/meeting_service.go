package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/errors"
)

// MeetingService implements the meeting use case
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	actionItemRepo repositories.ActionItemRepository
	analyzer       ai.Analyzer
	metrics        *metrics.Metrics
	logger         *zap.Logger
	now            func() time.Time
}

// Option configures a MeetingService
type Option func(*MeetingService)

// WithClock overrides the clock used to date new meetings
func WithClock(now func() time.Time) Option {
	return func(s *MeetingService) { s.now = now }
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	actionItemRepo repositories.ActionItemRepository,
	analyzer ai.Analyzer,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...Option,
) *MeetingService {
	s := &MeetingService{
		meetingRepo:    meetingRepo,
		actionItemRepo: actionItemRepo,
		analyzer:       analyzer,
		metrics:        m,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title    string
	RawNotes string
}

// CreateMeetingOutput represents the result of creating a meeting
type CreateMeetingOutput struct {
	MeetingID        uint
	Title            string
	Summary          string
	Date             time.Time
	ActionItemsCount int
	Analysis         entities.AnalysisOutcome
}

// CreateMeeting validates the input, analyzes the notes and stores everything in one transaction.
// Analysis failures never fail the request: the fallback result is stored instead.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error) {
	// Validate input
	if strings.TrimSpace(input.Title) == "" {
		return nil, usecaseErrors.ErrTitleRequired
	}
	if strings.TrimSpace(input.RawNotes) == "" {
		return nil, usecaseErrors.ErrRawNotesRequired
	}

	result, outcome := s.analyzer.Analyze(ctx, input.RawNotes)

	meeting := entities.NewMeeting(input.Title, input.RawNotes, s.now().UTC())
	summary := result.Summary
	meeting.Summary = &summary

	if meta, err := json.Marshal(outcome); err == nil {
		meeting.AnalysisMeta = datatypes.JSON(meta)
	}

	for _, item := range result.ActionItems {
		// Deadlines are free text from the model and are not stored
		meeting.ActionItems = append(meeting.ActionItems, entities.NewActionItem(item.Task, item.AssignedTo))
	}
	for _, d := range result.Decisions {
		meeting.Decisions = append(meeting.Decisions, entities.Decision{Decision: d})
	}
	for _, p := range result.KeyPoints {
		meeting.KeyPoints = append(meeting.KeyPoints, entities.KeyPoint{Point: p})
	}

	// Stored even when the client has gone away
	if err := s.meetingRepo.Create(context.WithoutCancel(ctx), meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.metrics.MeetingCreated()
	s.logger.Info("📝 Meeting created",
		zap.Uint("meeting_id", meeting.ID),
		zap.String("analysis_status", outcome.Status),
		zap.Int("action_items", len(meeting.ActionItems)),
		zap.Int("decisions", len(meeting.Decisions)),
		zap.Int("key_points", len(meeting.KeyPoints)),
	)

	return &CreateMeetingOutput{
		MeetingID:        meeting.ID,
		Title:            meeting.Title,
		Summary:          summary,
		Date:             meeting.Date,
		ActionItemsCount: len(meeting.ActionItems),
		Analysis:         outcome,
	}, nil
}

// ListMeetings retrieves all meetings with their action item counts
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*entities.MeetingOverview, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID uint) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// ListActionItems retrieves all action items with their meeting
func (s *MeetingService) ListActionItems(ctx context.Context) ([]*entities.ActionItem, error) {
	items, err := s.actionItemRepo.ListWithMeeting(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// CompleteActionItem marks an action item as completed
func (s *MeetingService) CompleteActionItem(ctx context.Context, itemID uint) (*entities.ActionItem, error) {
	item, err := s.actionItemRepo.MarkCompleted(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.metrics.ActionItemCompleted()
	s.logger.Info("✅ Action item completed",
		zap.Uint("action_item_id", item.ID),
		zap.Uint("meeting_id", item.MeetingID),
	)
	return item, nil
}

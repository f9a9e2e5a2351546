package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting analyzes the raw notes and stores the meeting with everything extracted
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error)

	// ListMeetings retrieves all meetings, newest date first, with action item counts
	ListMeetings(ctx context.Context) ([]*entities.MeetingOverview, error)

	// GetMeeting retrieves a meeting with its action items, decisions and key points
	GetMeeting(ctx context.Context, meetingID uint) (*entities.Meeting, error)

	// ListActionItems retrieves all action items, newest first, with their meeting
	ListActionItems(ctx context.Context) ([]*entities.ActionItem, error)

	// CompleteActionItem marks an action item as completed
	CompleteActionItem(ctx context.Context, itemID uint) (*entities.ActionItem, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

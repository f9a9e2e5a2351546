package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create stores a meeting together with its action items, decisions and
	// key points in a single transaction
	Create(ctx context.Context, meeting *entities.Meeting) error

	// List returns all meetings, newest date first, with action item counts
	List(ctx context.Context) ([]*entities.MeetingOverview, error)

	// FindByID retrieves a meeting with all child records
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// ListWithMeeting returns every action item, newest first, with its meeting loaded
	ListWithMeeting(ctx context.Context) ([]*entities.ActionItem, error)

	// MarkCompleted sets the item status to completed and returns the updated item
	MarkCompleted(ctx context.Context, id uint) (*entities.ActionItem, error)
}

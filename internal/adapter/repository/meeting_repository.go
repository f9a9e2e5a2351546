package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts the meeting row first so the children can reference its ID,
// all inside one transaction so no partial meeting is ever visible.
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		actionItems := meeting.ActionItems
		decisions := meeting.Decisions
		keyPoints := meeting.KeyPoints

		if err := tx.Omit(clause.Associations).Create(meeting).Error; err != nil {
			return fmt.Errorf("failed to create meeting: %w", err)
		}

		for i := range actionItems {
			actionItems[i].MeetingID = meeting.ID
		}
		for i := range decisions {
			decisions[i].MeetingID = meeting.ID
		}
		for i := range keyPoints {
			keyPoints[i].MeetingID = meeting.ID
		}

		if len(actionItems) > 0 {
			if err := tx.Omit(clause.Associations).Create(&actionItems).Error; err != nil {
				return fmt.Errorf("failed to create action items: %w", err)
			}
		}
		if len(decisions) > 0 {
			if err := tx.Create(&decisions).Error; err != nil {
				return fmt.Errorf("failed to create decisions: %w", err)
			}
		}
		if len(keyPoints) > 0 {
			if err := tx.Create(&keyPoints).Error; err != nil {
				return fmt.Errorf("failed to create key points: %w", err)
			}
		}

		meeting.ActionItems = actionItems
		meeting.Decisions = decisions
		meeting.KeyPoints = keyPoints
		return nil
	})
}

// actionItemCounts is the per-meeting aggregate row
type actionItemCounts struct {
	MeetingID uint
	Total     int
	Pending   int
}

// List retrieves meetings ordered by date descending with their action item counts
func (r *meetingRepository) List(ctx context.Context) ([]*entities.MeetingOverview, error) {
	var meetings []entities.Meeting
	err := r.db.WithContext(ctx).
		Select("id", "title", "date", "summary").
		Order("date DESC").
		Order("id DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	var counts []actionItemCounts
	err = r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Select("meeting_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending", entities.ActionItemStatusPending).
		Group("meeting_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byMeeting := make(map[uint]actionItemCounts, len(counts))
	for _, c := range counts {
		byMeeting[c.MeetingID] = c
	}

	overviews := make([]*entities.MeetingOverview, 0, len(meetings))
	for _, m := range meetings {
		c := byMeeting[m.ID]
		overviews = append(overviews, &entities.MeetingOverview{
			ID:               m.ID,
			Title:            m.Title,
			Date:             m.Date,
			Summary:          m.Summary,
			ActionItemsCount: c.Total,
			PendingTasks:     c.Pending,
		})
	}
	return overviews, nil
}

// FindByID retrieves a meeting by its ID with all child records
func (r *meetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Decisions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("KeyPoints", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

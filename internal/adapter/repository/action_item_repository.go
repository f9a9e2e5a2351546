package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// ListWithMeeting retrieves all action items, newest first, with the parent meeting
func (r *actionItemRepository) ListWithMeeting(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Meeting", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title", "date") }).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// MarkCompleted marks an action item as completed.
// Completing an already completed item is a no-op that returns the item.
func (r *actionItemRepository) MarkCompleted(ctx context.Context, id uint) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&item).Error; err != nil {
			return err
		}
		if item.IsCompleted() {
			return nil
		}
		if err := tx.Model(&item).Update("status", entities.ActionItemStatusCompleted).Error; err != nil {
			return err
		}
		item.Status = entities.ActionItemStatusCompleted
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

package entities

import "time"

// ActionItemStatus constants
const (
	ActionItemStatusPending   = "pending"
	ActionItemStatusCompleted = "completed"
)

// ActionItem represents a task extracted from meeting notes
type ActionItem struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	MeetingID  uint       `json:"meeting_id" gorm:"not null;index"`
	Task       string     `json:"task" gorm:"type:text;not null"`
	AssignedTo *string    `json:"assigned_to" gorm:"type:varchar(255)"`
	Deadline   *time.Time `json:"deadline"`
	Status     string     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Meeting *Meeting `json:"-" gorm:"foreignKey:MeetingID"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action item.
// Deadlines are never parsed from the extracted text, so Deadline starts nil.
func NewActionItem(task string, assignedTo *string) ActionItem {
	return ActionItem{
		Task:       task,
		AssignedTo: assignedTo,
		Status:     ActionItemStatusPending,
	}
}

// IsCompleted reports whether the item has been marked done
func (a *ActionItem) IsCompleted() bool {
	return a.Status == ActionItemStatusCompleted
}

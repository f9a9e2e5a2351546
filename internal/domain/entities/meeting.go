package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Meeting is a set of raw notes together with the records extracted from them
type Meeting struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"type:varchar(255);not null"`
	Date         time.Time      `json:"date" gorm:"not null"`
	RawNotes     string         `json:"raw_notes" gorm:"type:text;not null"`
	Summary      *string        `json:"summary,omitempty" gorm:"type:text"`
	AnalysisMeta datatypes.JSON `json:"-" gorm:"column:analysis_meta"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`

	ActionItems []ActionItem `json:"action_items,omitempty" gorm:"foreignKey:MeetingID"`
	Decisions   []Decision   `json:"decisions,omitempty" gorm:"foreignKey:MeetingID"`
	KeyPoints   []KeyPoint   `json:"key_points,omitempty" gorm:"foreignKey:MeetingID"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting dated at the given instant
func NewMeeting(title, rawNotes string, date time.Time) *Meeting {
	return &Meeting{
		Title:    title,
		Date:     date,
		RawNotes: rawNotes,
	}
}

// MeetingOverview is a meeting row with derived action item counts
type MeetingOverview struct {
	ID               uint
	Title            string
	Date             time.Time
	Summary          *string
	ActionItemsCount int
	PendingTasks     int
}

// Decision is a decision recorded during a meeting
type Decision struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MeetingID uint      `json:"meeting_id" gorm:"not null;index"`
	Decision  string    `json:"decision" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}

// KeyPoint is an important discussion point or takeaway
type KeyPoint struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MeetingID uint      `json:"meeting_id" gorm:"not null;index"`
	Point     string    `json:"point" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for KeyPoint
func (KeyPoint) TableName() string {
	return "key_points"
}

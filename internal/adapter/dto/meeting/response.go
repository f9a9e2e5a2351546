package meeting

import "time"

// CreateMeetingResponse is returned after a meeting has been analyzed and stored
type CreateMeetingResponse struct {
	MeetingID        uint      `json:"meeting_id"`
	Title            string    `json:"title"`
	Summary          string    `json:"summary"`
	Date             time.Time `json:"date"`
	ActionItemsCount int       `json:"action_items_count"`
	Message          string    `json:"message"`
}

// MeetingSummaryResponse is one row of the meeting list
type MeetingSummaryResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	Summary          *string   `json:"summary"`
	ActionItemsCount int       `json:"action_items_count"`
	PendingTasks     int       `json:"pending_tasks"`
}

// ActionItemResponse is an action item nested in a meeting
type ActionItemResponse struct {
	ID         uint       `json:"id"`
	Task       string     `json:"task"`
	AssignedTo *string    `json:"assigned_to"`
	Deadline   *time.Time `json:"deadline"`
	Status     string     `json:"status"`
}

// MeetingDetailResponse is the full meeting record
type MeetingDetailResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Date        time.Time            `json:"date"`
	RawNotes    string               `json:"raw_notes"`
	Summary     *string              `json:"summary"`
	ActionItems []ActionItemResponse `json:"action_items"`
	Decisions   []string             `json:"decisions"`
	KeyPoints   []string             `json:"key_points"`
}

// ActionItemListResponse is an action item annotated with its meeting
type ActionItemListResponse struct {
	ID           uint       `json:"id"`
	Task         string     `json:"task"`
	AssignedTo   *string    `json:"assigned_to"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status"`
	MeetingTitle string     `json:"meeting_title"`
	MeetingDate  *time.Time `json:"meeting_date"`
}

// CompleteActionItemResponse is returned after completing an action item
type CompleteActionItemResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
	Status  string `json:"status"`
}

// IndexResponse describes the service and its endpoints
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

package meeting

// CreateMeetingRequest represents the request to create and analyze a meeting
type CreateMeetingRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	RawNotes string `json:"raw_notes" validate:"required"`
}

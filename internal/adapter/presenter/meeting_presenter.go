package presenter

import (
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/meeting"
)

// UnknownMeetingTitle is shown for an action item whose meeting could not be loaded
const UnknownMeetingTitle = "Unknown"

// MeetingAnalyzedMessage is returned after a meeting has been created
const MeetingAnalyzedMessage = "Meeting analyzed successfully"

// ActionItemCompletedMessage is returned after an action item has been completed
const ActionItemCompletedMessage = "Action item marked as complete"

// ToCreateMeetingResponse converts the create use case output to its response DTO
func ToCreateMeetingResponse(out *meetingUsecase.CreateMeetingOutput) *meeting.CreateMeetingResponse {
	if out == nil {
		return nil
	}
	return &meeting.CreateMeetingResponse{
		MeetingID:        out.MeetingID,
		Title:            out.Title,
		Summary:          out.Summary,
		Date:             out.Date,
		ActionItemsCount: out.ActionItemsCount,
		Message:          MeetingAnalyzedMessage,
	}
}

// ToMeetingSummaryResponses converts meeting overviews to the list DTO.
// The result is never nil so an empty list encodes as [].
func ToMeetingSummaryResponses(overviews []*entities.MeetingOverview) []meeting.MeetingSummaryResponse {
	out := make([]meeting.MeetingSummaryResponse, 0, len(overviews))
	for _, m := range overviews {
		out = append(out, meeting.MeetingSummaryResponse{
			ID:               m.ID,
			Title:            m.Title,
			Date:             m.Date,
			Summary:          m.Summary,
			ActionItemsCount: m.ActionItemsCount,
			PendingTasks:     m.PendingTasks,
		})
	}
	return out
}

// ToMeetingDetailResponse converts a Meeting entity with its children to the detail DTO
func ToMeetingDetailResponse(m *entities.Meeting) *meeting.MeetingDetailResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingDetailResponse{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		RawNotes:    m.RawNotes,
		Summary:     m.Summary,
		ActionItems: make([]meeting.ActionItemResponse, 0, len(m.ActionItems)),
		Decisions:   make([]string, 0, len(m.Decisions)),
		KeyPoints:   make([]string, 0, len(m.KeyPoints)),
	}

	for _, item := range m.ActionItems {
		response.ActionItems = append(response.ActionItems, meeting.ActionItemResponse{
			ID:         item.ID,
			Task:       item.Task,
			AssignedTo: item.AssignedTo,
			Deadline:   item.Deadline,
			Status:     item.Status,
		})
	}
	for _, d := range m.Decisions {
		response.Decisions = append(response.Decisions, d.Decision)
	}
	for _, kp := range m.KeyPoints {
		response.KeyPoints = append(response.KeyPoints, kp.Point)
	}

	return response
}

// ToActionItemListResponses converts action items with their meeting to the list DTO
func ToActionItemListResponses(items []*entities.ActionItem) []meeting.ActionItemListResponse {
	out := make([]meeting.ActionItemListResponse, 0, len(items))
	for _, item := range items {
		resp := meeting.ActionItemListResponse{
			ID:           item.ID,
			Task:         item.Task,
			AssignedTo:   item.AssignedTo,
			Deadline:     item.Deadline,
			Status:       item.Status,
			MeetingTitle: UnknownMeetingTitle,
		}
		if item.Meeting != nil {
			resp.MeetingTitle = item.Meeting.Title
			date := item.Meeting.Date
			resp.MeetingDate = &date
		}
		out = append(out, resp)
	}
	return out
}

// ToCompleteActionItemResponse converts a completed action item to its response DTO
func ToCompleteActionItemResponse(item *entities.ActionItem) *meeting.CompleteActionItemResponse {
	return &meeting.CompleteActionItemResponse{
		Message: ActionItemCompletedMessage,
		ID:      item.ID,
		Status:  item.Status,
	}
}

// ToIndexResponse describes the service version and its endpoints
func ToIndexResponse(version string) *meeting.IndexResponse {
	return &meeting.IndexResponse{
		Message: "AI Meeting Notes Analyzer API",
		Version: version,
		Endpoints: map[string]string{
			"create_meeting":       "POST /api/meetings",
			"get_meetings":         "GET /api/meetings",
			"get_meeting":          "GET /api/meetings/{id}",
			"get_action_items":     "GET /api/action-items",
			"complete_action_item": "PATCH /api/action-items/{id}/complete",
		},
	}
}

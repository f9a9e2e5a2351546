package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

func TestToActionItemListResponses_MissingMeeting(t *testing.T) {
	date := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []*entities.ActionItem{
		{ID: 1, Task: "with meeting", Status: entities.ActionItemStatusPending, Meeting: &entities.Meeting{Title: "Sync", Date: date}},
		{ID: 2, Task: "orphan", Status: entities.ActionItemStatusCompleted},
	}

	out := ToActionItemListResponses(items)
	require.Len(t, out, 2)

	assert.Equal(t, "Sync", out[0].MeetingTitle)
	require.NotNil(t, out[0].MeetingDate)
	assert.True(t, out[0].MeetingDate.Equal(date))

	assert.Equal(t, UnknownMeetingTitle, out[1].MeetingTitle)
	assert.Nil(t, out[1].MeetingDate)
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	b, err := json.Marshal(ToMeetingSummaryResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = json.Marshal(ToActionItemListResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	detail := ToMeetingDetailResponse(&entities.Meeting{ID: 7, Title: "Empty"})
	b, err = json.Marshal(detail)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"action_items":[]`)
	assert.Contains(t, string(b), `"decisions":[]`)
	assert.Contains(t, string(b), `"key_points":[]`)
}

func TestToMeetingDetailResponse_FlattensChildren(t *testing.T) {
	summary := "S"
	m := &entities.Meeting{
		ID:       3,
		Title:    "Retro",
		RawNotes: "raw",
		Summary:  &summary,
		ActionItems: []entities.ActionItem{
			{ID: 10, Task: "Fix CI", Status: entities.ActionItemStatusPending},
		},
		Decisions: []entities.Decision{{Decision: "Weekly retros"}},
		KeyPoints: []entities.KeyPoint{{Point: "CI is flaky"}, {Point: "Morale good"}},
	}

	resp := ToMeetingDetailResponse(m)
	assert.Equal(t, "raw", resp.RawNotes)
	assert.Equal(t, []string{"Weekly retros"}, resp.Decisions)
	assert.Equal(t, []string{"CI is flaky", "Morale good"}, resp.KeyPoints)
	require.Len(t, resp.ActionItems, 1)
	assert.Equal(t, "Fix CI", resp.ActionItems[0].Task)
	assert.Nil(t, resp.ActionItems[0].Deadline)
}

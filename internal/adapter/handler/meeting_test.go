package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/errors"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	aiuse "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-notes-analyzer/pkg/validator"
)

// scriptedLLM replies with a fixed text or error
type scriptedLLM struct {
	reply string
	err   error
	calls int
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

const twoItemReply = "```json\n" + `{
  "action_items": [
    {"task": "Send the deck", "assigned_to": "Priya", "deadline": "Monday"},
    {"task": "Book the venue", "assigned_to": null, "deadline": null}
  ],
  "decisions": ["Launch in Q3"],
  "key_points": ["Marketing needs a brief"],
  "summary": "Launch planning."
}` + "\n```"

func newTestServer(t *testing.T, llm *scriptedLLM) *echo.Echo {
	t.Helper()
	db := databasetest.New(t)
	m := metrics.New()
	logger := zap.NewNop()

	analyzer := aiuse.NewAnalyzer(llm, "test-model", m, logger)
	svc := meetingUsecase.NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewActionItemRepository(db),
		analyzer, m, logger,
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	handler.NewRouter(&config.Config{}, handler.NewMeetingHandler(svc, logger), m).Setup(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestMeetingFlow(t *testing.T) {
	llm := &scriptedLLM{reply: twoItemReply}
	e := newTestServer(t, llm)

	// Create
	rec := do(t, e, http.MethodPost, "/api/meetings", `{"title":"Launch sync","raw_notes":"Priya sends the deck Monday."}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created map[string]interface{}
	decode(t, rec, &created)
	assert.Equal(t, "Launch sync", created["title"])
	assert.Equal(t, "Launch planning.", created["summary"])
	assert.Equal(t, float64(2), created["action_items_count"])
	assert.Equal(t, "Meeting analyzed successfully", created["message"])
	assert.NotEmpty(t, created["date"])
	meetingID := int(created["meeting_id"].(float64))
	assert.Positive(t, meetingID)

	// List
	rec = do(t, e, http.MethodGet, "/api/meetings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, float64(2), list[0]["action_items_count"])
	assert.Equal(t, float64(2), list[0]["pending_tasks"])

	// Detail
	rec = do(t, e, http.MethodGet, "/api/meetings/"+strconv.Itoa(meetingID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		ID          int    `json:"id"`
		RawNotes    string `json:"raw_notes"`
		ActionItems []struct {
			ID         int     `json:"id"`
			Task       string  `json:"task"`
			AssignedTo *string `json:"assigned_to"`
			Deadline   *string `json:"deadline"`
			Status     string  `json:"status"`
		} `json:"action_items"`
		Decisions []string `json:"decisions"`
		KeyPoints []string `json:"key_points"`
	}
	decode(t, rec, &detail)
	assert.Equal(t, "Priya sends the deck Monday.", detail.RawNotes)
	require.Len(t, detail.ActionItems, 2)
	assert.Equal(t, "Send the deck", detail.ActionItems[0].Task)
	assert.Equal(t, "Priya", *detail.ActionItems[0].AssignedTo)
	assert.Nil(t, detail.ActionItems[0].Deadline)
	assert.Equal(t, entities.ActionItemStatusPending, detail.ActionItems[0].Status)
	assert.Equal(t, []string{"Launch in Q3"}, detail.Decisions)
	assert.Equal(t, []string{"Marketing needs a brief"}, detail.KeyPoints)

	// Complete
	itemID := detail.ActionItems[1].ID
	rec = do(t, e, http.MethodPatch, "/api/action-items/"+strconv.Itoa(itemID)+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var completed map[string]interface{}
	decode(t, rec, &completed)
	assert.Equal(t, "Action item marked as complete", completed["message"])
	assert.Equal(t, "completed", completed["status"])

	// Completing twice is idempotent
	rec = do(t, e, http.MethodPatch, "/api/action-items/"+strconv.Itoa(itemID)+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Action items
	rec = do(t, e, http.MethodGet, "/api/action-items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	decode(t, rec, &items)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "Launch sync", item["meeting_title"])
		assert.NotNil(t, item["meeting_date"])
	}

	rec = do(t, e, http.MethodGet, "/api/meetings", "")
	decode(t, rec, &list)
	assert.Equal(t, float64(1), list[0]["pending_tasks"])
}

func TestCreateMeeting_FallbackStillSucceeds(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{reply: "not json"})

	rec := do(t, e, http.MethodPost, "/api/meetings", `{"title":"Sync","raw_notes":"notes"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created map[string]interface{}
	decode(t, rec, &created)
	assert.Equal(t, entities.FallbackSummary, created["summary"])
	assert.Equal(t, float64(0), created["action_items_count"])
}

func TestCreateMeeting_Validation(t *testing.T) {
	tests := map[string]string{
		"missing title":  `{"raw_notes":"notes"}`,
		"missing notes":  `{"title":"Sync"}`,
		"empty body":     `{}`,
		"blank title":    `{"title":"  ","raw_notes":"notes"}`,
		"malformed json": `{"title":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			llm := &scriptedLLM{reply: twoItemReply}
			e := newTestServer(t, llm)

			rec := do(t, e, http.MethodPost, "/api/meetings", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Zero(t, llm.calls, "inference must not run for invalid requests")

			rec = do(t, e, http.MethodGet, "/api/meetings", "")
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestNotFoundAndBadIDs(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{reply: twoItemReply})

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   errors.ErrorCode
	}{
		{"unknown meeting", http.MethodGet, "/api/meetings/999", http.StatusNotFound, errors.ErrorCode_MEETING_NOT_FOUND},
		{"unknown action item", http.MethodPatch, "/api/action-items/999/complete", http.StatusNotFound, errors.ErrorCode_ACTION_ITEM_NOT_FOUND},
		{"non-numeric meeting id", http.MethodGet, "/api/meetings/abc", http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
		{"zero action item id", http.MethodPatch, "/api/action-items/0/complete", http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.path, "")
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]interface{}
			decode(t, rec, &body)
			assert.Equal(t, float64(tt.code), body["code"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestEmptyListsAreArrays(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	for _, path := range []string{"/api/meetings", "/api/action-items"} {
		rec := do(t, e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	}
}

func TestAmbientRoutes(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	rec := do(t, e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var index map[string]interface{}
	decode(t, rec, &index)
	assert.Equal(t, handler.Version, index["version"])
	assert.Contains(t, index["endpoints"], "create_meeting")

	rec = do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "notes_meetings_created_total")
}

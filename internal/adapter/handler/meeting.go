package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/errors"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/meeting"
)

// Meeting handles meeting and action item HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
// @Summary      Analyze and store meeting notes
// @Description  Extracts action items, decisions, key points and a summary from raw notes and stores the meeting. Analysis failures still store the meeting with a placeholder summary.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest   true  "Meeting notes"
// @Success      200      {object}  meeting.CreateMeetingResponse  "Meeting analyzed"
// @Failure      400      {object}  map[string]interface{}         "Invalid payload or validation failed"
// @Failure      500      {object}  map[string]interface{}         "Failed to store meeting"
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	out, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:    req.Title,
		RawNotes: req.RawNotes,
	})
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrInvalidInput) {
			return HandleError(h.logger, c, errors.ErrValidationFailed(err))
		}
		return HandleError(h.logger, c, errors.ErrDBTransactionFailed(err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCreateMeetingResponse(out))
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Lists all meetings, newest first, with action item counts
// @Tags         Meetings
// @Produce      json
// @Success      200  {array}   meeting.MeetingSummaryResponse  "Meetings"
// @Failure      500  {object}  map[string]interface{}          "Failed to list meetings"
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list meetings", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingSummaryResponses(meetings))
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get meeting details
// @Description  Gets a meeting with its raw notes, action items, decisions and key points
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int                            true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingDetailResponse  "Meeting details"
// @Failure      400  {object}  map[string]interface{}         "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}         "Meeting not found"
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(strconv.FormatUint(uint64(meetingID), 10)))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get meeting", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingDetailResponse(m))
}

// ListActionItems handles GET /api/action-items
// @Summary      List action items
// @Description  Lists action items across all meetings, newest first, with their meeting title and date
// @Tags         Action Items
// @Produce      json
// @Success      200  {array}   meeting.ActionItemListResponse  "Action items"
// @Failure      500  {object}  map[string]interface{}          "Failed to list action items"
// @Router       /api/action-items [get]
func (h *Meeting) ListActionItems(c echo.Context) error {
	items, err := h.meetingService.ListActionItems(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list action items", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemListResponses(items))
}

// CompleteActionItem handles PATCH /api/action-items/:id/complete
// @Summary      Complete an action item
// @Description  Marks an action item as completed. Completing it again has no further effect.
// @Tags         Action Items
// @Produce      json
// @Param        id   path      int                                 true  "Action item ID"
// @Success      200  {object}  meeting.CompleteActionItemResponse  "Action item completed"
// @Failure      400  {object}  map[string]interface{}              "Invalid action item ID"
// @Failure      404  {object}  map[string]interface{}              "Action item not found"
// @Router       /api/action-items/{id}/complete [patch]
func (h *Meeting) CompleteActionItem(c echo.Context) error {
	itemID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.CompleteActionItem(c.Request().Context(), itemID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrActionItemNotFound) {
			return HandleError(h.logger, c, errors.ErrActionItemNotFound(strconv.FormatUint(uint64(itemID), 10)))
		}
		return HandleError(h.logger, c, errors.ErrDBTransactionFailed(err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCompleteActionItemResponse(item))
}

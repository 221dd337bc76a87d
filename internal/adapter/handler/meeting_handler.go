package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
)

// MeetingHandler serves meeting notes extraction
type MeetingHandler struct {
	svc    extraction.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc extraction.Service, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, logger: logger}
}

// ProcessMeeting extracts a summary, decisions and action items from meeting notes
// @Summary      Process meeting notes
// @Description  Accepts notes as an uploaded file (multipart field notesFile), a text/plain body, or a JSON body {"notes": "..."}; first match wins in that order.
// @Tags         Meeting
// @Accept       json,plain,mpfd
// @Produce      json
// @Param        notesFile  formData  file                          false  "Meeting notes file (UTF-8 text)"
// @Param        request    body      dto.ProcessMeetingRequest     false  "Meeting notes as JSON"
// @Success      200        {object}  dto.ProcessMeetingResponse    "Extraction result"
// @Failure      400        {object}  common.ErrorResponse          "No meeting notes provided"
// @Failure      413        {object}  common.ErrorResponse          "Request body too large"
// @Failure      500        {object}  common.ErrorResponse          "Extraction failed"
// @Router       /process-meeting [post]
func (h *MeetingHandler) ProcessMeeting(c echo.Context) error {
	in, err := readNotesInput(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	text, source, err := notes.Normalize(in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Debug("meeting notes received",
			zap.String("request_id", getRequestID(c)),
			zap.String("source", string(source)),
			zap.Int("notes_len", len(text)),
		)
	}

	result, err := h.svc.Extract(c.Request().Context(), text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProcessMeetingResponse(result))
}

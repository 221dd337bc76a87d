package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ValidateContentType checks if the request content type matches the expected type
func ValidateContentType(r *http.Request, expectedType string) bool {
	contentType := r.Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(strings.ToLower(contentType), strings.ToLower(expectedType))
}

// getRequestID returns the id assigned by the RequestID middleware,
// falling back to the X-Request-ID sent by the client
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// toAppError classifies any error surfaced while serving a request
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return errors.ErrNotFound("Route")
		case http.StatusRequestEntityTooLarge:
			return errors.ErrPayloadTooLarge()
		default:
			msg := http.StatusText(httpErr.Code)
			if s, ok := httpErr.Message.(string); ok && s != "" {
				msg = s
			}
			return errors.ErrRequestRejected(httpErr.Code, msg)
		}
	}

	switch {
	case stdErrors.Is(err, entities.ErrNoNotes):
		return errors.ErrMissingNotes()
	case stdErrors.Is(err, entities.ErrNotesNotUTF8):
		return errors.ErrNotesDecodeFailed(err)
	case stdErrors.Is(err, entities.ErrExtractionFailed):
		return errors.ErrExtractionFailed(err)
	}

	return errors.ErrInternal(err)
}

// HandleSuccess writes data as the JSON response body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger.
// Client errors are logged at warn level, server faults at error level with their cause.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Int("status", appErr.HTTPCode),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", append(fields, zap.Error(err))...)
		} else {
			logger.Warn("http.response.rejected", append(fields, zap.String("reason", appErr.Message))...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{Error: appErr.Message})
}

// NewHTTPErrorHandler renders errors escaping handlers and middleware
// (unknown routes, body limit, panics) with the same JSON envelope
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("http.response.write_failed", zap.Error(herr))
		}
	}
}

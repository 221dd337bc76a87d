package handler

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
)

// notesFileField is the multipart field carrying an uploaded notes file
const notesFileField = "notesFile"

// readNotesInput collects the notes sources present in the request.
// Request bodies of any other content type contribute nothing.
func readNotesInput(c echo.Context) (notes.Input, error) {
	var in notes.Input
	req := c.Request()

	switch {
	case ValidateContentType(req, echo.MIMEMultipartForm):
		fh, err := c.FormFile(notesFileField)
		switch {
		case err == nil:
			data, err := readFormFile(fh)
			if err != nil {
				return in, err
			}
			in.File = &notes.File{Name: fh.Filename, Data: data}
		case stdErrors.Is(err, http.ErrMissingFile):
		case stdErrors.Is(err, echo.ErrStatusRequestEntityTooLarge):
			return in, err
		default:
			return in, errors.ErrInvalidPayload()
		}
		in.FieldText = c.FormValue("notes")

	case ValidateContentType(req, echo.MIMETextPlain):
		body, err := io.ReadAll(req.Body)
		if err != nil {
			if stdErrors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return in, err
			}
			return in, errors.ErrInvalidPayload()
		}
		in.RawText = string(body)

	case ValidateContentType(req, echo.MIMEApplicationJSON):
		var body dto.ProcessMeetingRequest
		if err := c.Bind(&body); err != nil {
			if stdErrors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return in, err
			}
			return in, errors.ErrInvalidPayload()
		}
		text, err := notesFieldText(body.Notes)
		if err != nil {
			return in, err
		}
		in.FieldText = text
	}

	return in, nil
}

// notesFieldText renders the JSON notes value as prompt text. Strings are used
// verbatim, other scalars as their JSON literal. null, false and zero count as
// no notes; objects and arrays are rejected.
func notesFieldText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", errors.ErrInvalidPayload()
	}

	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		if !val {
			return "", nil
		}
		return "true", nil
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return "", nil
		}
		return val.String(), nil
	default:
		return "", errors.ErrInvalidPayload()
	}
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file %q: %w", fh.Filename, err)
	}
	return data, nil
}

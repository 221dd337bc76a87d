package notes

import (
	"fmt"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// File is an uploaded notes file
type File struct {
	Name string
	Data []byte
}

// Input collects every place a request may carry meeting notes.
// File is nil when no file part was uploaded.
type Input struct {
	File      *File
	RawText   string
	FieldText string
}

// Source names which part of the request the notes were taken from
type Source string

const (
	SourceNone  Source = "none"
	SourceFile  Source = "file"
	SourceText  Source = "text"
	SourceField Source = "field"
)

// Normalize picks the notes text from in, first match wins:
// uploaded file, then raw text body, then the notes field.
// An uploaded file is never skipped, even when empty.
func Normalize(in Input) (string, Source, error) {
	switch {
	case in.File != nil:
		if !utf8.Valid(in.File.Data) {
			return "", SourceFile, fmt.Errorf("%w: file %q", entities.ErrNotesNotUTF8, in.File.Name)
		}
		if len(in.File.Data) == 0 {
			return "", SourceFile, entities.ErrNoNotes
		}
		return string(in.File.Data), SourceFile, nil

	case in.RawText != "":
		if !utf8.ValidString(in.RawText) {
			return "", SourceText, fmt.Errorf("%w: request body", entities.ErrNotesNotUTF8)
		}
		return in.RawText, SourceText, nil

	case in.FieldText != "":
		return in.FieldText, SourceField, nil

	default:
		return "", SourceNone, entities.ErrNoNotes
	}
}

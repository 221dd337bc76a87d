package entities

import "errors"

// Domain errors
var (
	// Input errors
	ErrNoNotes      = errors.New("no meeting notes provided")
	ErrNotesNotUTF8 = errors.New("meeting notes are not valid UTF-8")

	// Extraction errors
	ErrExtractionFailed = errors.New("failed to process notes with AI")
)

package entities

import "encoding/json"

// ExtractionResult is the structured reading of one set of meeting notes
// as returned by the completion service. Each field holds the JSON value the
// service produced and is relayed without type checks; a nil field means the
// reply did not carry it.
//
// The prompt asks for summary as a string, decisions as a list of strings and
// actionItems as a list of {task, owner?, due?} objects.
type ExtractionResult struct {
	Summary     json.RawMessage `json:"summary"`
	Decisions   json.RawMessage `json:"decisions"`
	ActionItems json.RawMessage `json:"actionItems"`
}

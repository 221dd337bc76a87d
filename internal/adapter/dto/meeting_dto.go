package dto

import "encoding/json"

// ProcessMeetingRequest is the JSON form of the notes input.
// Notes is kept raw so scalar values other than strings can be accepted.
type ProcessMeetingRequest struct {
	Notes json.RawMessage `json:"notes" swaggertype:"string"`
}

// ProcessMeetingResponse is the extraction result returned to the caller.
// Values are relayed from the completion service as-is.
type ProcessMeetingResponse struct {
	Summary     json.RawMessage `json:"summary" swaggertype:"string"`
	Decisions   json.RawMessage `json:"decisions" swaggertype:"array,string"`
	ActionItems json.RawMessage `json:"actionItems" swaggertype:"array,object"`
}

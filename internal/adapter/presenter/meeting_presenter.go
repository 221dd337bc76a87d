package presenter

import (
	"encoding/json"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

var (
	emptySummary = json.RawMessage(`""`)
	emptyList    = json.RawMessage(`[]`)
)

// ToProcessMeetingResponse converts an ExtractionResult entity to its response DTO.
// Missing fields are rendered as "" and [] rather than null.
func ToProcessMeetingResponse(r *entities.ExtractionResult) *dto.ProcessMeetingResponse {
	if r == nil {
		return nil
	}

	return &dto.ProcessMeetingResponse{
		Summary:     orDefault(r.Summary, emptySummary),
		Decisions:   orDefault(r.Decisions, emptyList),
		ActionItems: orDefault(r.ActionItems, emptyList),
	}
}

func orDefault(v, def json.RawMessage) json.RawMessage {
	if len(v) == 0 {
		return def
	}
	return v
}

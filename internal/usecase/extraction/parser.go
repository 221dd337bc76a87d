package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ParseReply decodes the completion reply into an ExtractionResult.
// The reply must be a JSON object; field values are relayed as the model wrote them.
func ParseReply(reply string) (*entities.ExtractionResult, error) {
	reply = extractJSON(reply)
	if reply == "" {
		return nil, fmt.Errorf("empty reply")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(reply), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("reply is not a JSON object")
	}

	return &entities.ExtractionResult{
		Summary:     field(fields, "summary"),
		Decisions:   field(fields, "decisions"),
		ActionItems: field(fields, "actionItems"),
	}, nil
}

// field returns the raw value under key; null counts as absent
func field(fields map[string]json.RawMessage, key string) json.RawMessage {
	v := bytes.TrimSpace(fields[key])
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil
	}
	return v
}

// listLen reports the element count of a JSON array, or 0 for anything else
func listLen(raw json.RawMessage) int {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}

// extractJSON strips a surrounding markdown code fence, which some
// OpenAI-compatible providers add even in JSON mode
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

package extraction

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Completer sends a prompt to a completion service and returns its JSON reply
type Completer interface {
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// Service extracts summary, decisions and action items from meeting notes
type Service interface {
	Extract(ctx context.Context, notes string) (*entities.ExtractionResult, error)
}

type extractionService struct {
	completer Completer
	logger    *zap.Logger
}

// NewService constructs a new extraction service
func NewService(completer Completer, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &extractionService{
		completer: completer,
		logger:    logger,
	}
}

// Extract runs one prompt/reply round trip. Every failure is reported as
// entities.ErrExtractionFailed wrapping the cause; nothing is retried.
func (s *extractionService) Extract(ctx context.Context, notes string) (*entities.ExtractionResult, error) {
	if notes == "" {
		return nil, entities.ErrNoNotes
	}

	start := time.Now()
	s.logger.Info("🤖 Extracting meeting details",
		zap.Int("notes_len", len(notes)),
	)

	reply, err := s.completer.CompleteJSON(ctx, BuildPrompt(notes))
	if err != nil {
		s.logger.Error("❌ Completion service call failed",
			zap.Error(err),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("%w: %w", entities.ErrExtractionFailed, err)
	}

	result, err := ParseReply(reply)
	if err != nil {
		s.logger.Error("❌ Failed to parse completion reply",
			zap.Error(err),
			zap.Int("reply_len", len(reply)),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("%w: %w", entities.ErrExtractionFailed, err)
	}

	s.logger.Info("✅ Meeting details extracted",
		zap.Int("decisions", listLen(result.Decisions)),
		zap.Int("action_items", listLen(result.ActionItems)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return result, nil
}

package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/ports"
)

// LogPublisher stands in for the broker when none is configured; it only
// records events at debug level.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event ports.DirectoryEvent) error {
	p.log.Debug().
		Str("type", event.Type).
		Str("subject_id", event.SubjectID).
		Str("state", event.State).
		Msg("directory event")
	return nil
}

// Package audit defines the append-only record of processed messages.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record captures one processed message: who wrote, what they wrote, and
// what the bot answered. Conversion logic never reads these back.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UserID    int64
	FirstName string
	LastName  string
	Username  string
	Request   string
	Response  string
}

// Recorder appends audit records. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// NopRecorder discards records. Used in tests and when no database is
// configured.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, Record) error { return nil }

var _ Recorder = NopRecorder{}

package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued analysis: a document path scoped to its owner.
type Job struct {
	UserID      uuid.UUID
	Path        string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

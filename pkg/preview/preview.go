// Package preview holds the request contract to the thumbnail
// generation subsystem. Generation itself happens elsewhere; this layer
// only submits jobs.
package preview

import (
	"context"

	"github.com/google/uuid"
)

// Request is one preview job submission.
type Request struct {
	JobID    uuid.UUID
	Url      string
	Sizes    []string
	Metadata map[string]string
}

func NewRequest(url string, sizes []string, metadata map[string]string) Request {
	return Request{
		JobID:    uuid.New(),
		Url:      url,
		Sizes:    sizes,
		Metadata: metadata,
	}
}

// Queuer submits preview jobs. Submissions are fire and forget; no
// result is consumed by this layer.
type Queuer interface {
	QueuePreviews(ctx context.Context, req Request) error
}

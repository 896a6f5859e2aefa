package mockpreview

import (
	"context"
	"sync"

	"boards-backend/pkg/preview"
)

// Recorder captures queued preview requests for tests.
type Recorder struct {
	mu       sync.Mutex
	Requests []preview.Request
	FailWith error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) QueuePreviews(_ context.Context, req preview.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.Requests = append(r.Requests, req)
	return nil
}

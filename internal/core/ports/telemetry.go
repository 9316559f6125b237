package ports

import (
	"context"
	"io"
)

// Telemetry records progress for the coarse phases of a run (indexing each
// forest, matching, applying).
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work. Writes stream progress
// output attached to the vertex.
type Vertex interface {
	io.Writer
	// Done completes the vertex, recording err when non-nil.
	Done(err error)
}

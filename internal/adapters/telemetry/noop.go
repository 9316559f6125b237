// Package telemetry provides the no-op telemetry implementation. The
// progrock-backed recorder lives in the progrock subpackage.
package telemetry

import (
	"context"

	"go.trai.ch/undup/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record creates a new no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write does nothing and reports the full length as written.
func (v *NoOpVertex) Write(p []byte) (int, error) {
	return len(p), nil
}

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}

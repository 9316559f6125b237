package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/undup/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write streams progress output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Stderr returns a writer capturing the error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Done marks the vertex as finished, successfully or with an error.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}

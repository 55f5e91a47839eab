package sectile

import (
	"context"
	"fmt"
)

// Sink is the downstream consumer of artifacts. Write must return only once
// the artifact has been accepted (not merely handed off); the pipeline
// relies on that to hold back a document's completion until all of its
// artifacts have been delivered.
type Sink interface {
	Write(ctx context.Context, artifact Artifact) error
}

// EmitArtifacts delivers a document's artifacts to sink, in order, and
// returns once every write has been acknowledged. A document with zero
// artifacts completes immediately.
func EmitArtifacts(ctx context.Context, sink Sink, artifacts []Artifact) error {
	for _, artifact := range artifacts {
		if err := sink.Write(ctx, artifact); err != nil {
			return fmt.Errorf("emitting %s: %w", artifact.Path, err)
		}
	}
	return nil
}

package mlmd

import "context"

// Store is the read surface of the metadata graph store that lineage
// traversal needs. Implementations return a NETWORK error for transport
// failures; absence is not an error where the method says otherwise.
type Store interface {
	// GetArtifactTypes returns all registered artifact types.
	GetArtifactTypes(ctx context.Context) ([]ArtifactType, error)

	// GetContextByTypeAndName looks up one context. A context that does
	// not exist returns (nil, nil): absence is an expected outcome the
	// caller handles, not a transport failure.
	GetContextByTypeAndName(ctx context.Context, typeName, contextName string) (*Context, error)

	// GetExecutionsByContext returns every execution attached to the
	// context.
	GetExecutionsByContext(ctx context.Context, contextID int64) ([]Execution, error)

	// GetEventsByExecutionIDs returns the events of the given executions,
	// both inputs and outputs.
	GetEventsByExecutionIDs(ctx context.Context, executionIDs []int64) ([]Event, error)

	// GetArtifactsByID resolves artifact IDs to full artifact records.
	GetArtifactsByID(ctx context.Context, artifactIDs []int64) ([]Artifact, error)
}

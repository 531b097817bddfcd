// Package domain defines the types and interfaces for the graph service
package domain

import (
	"context"

	"bitebank/internal/core/socialgraph"
)

// SnapshotPort resolves a user's social neighborhood
type SnapshotPort interface {
	// Snapshot returns the direct and indirect connection sets for a user
	// callers that score under degraded conditions should treat an error
	// as an isolated user rather than aborting
	Snapshot(ctx context.Context, userID string) (socialgraph.Snapshot, error)
}

// WriterPort mutates the connection graph
type WriterPort interface {
	// Connect records a mutual connection between two users; idempotent
	Connect(ctx context.Context, userID, peerID string) error
}

// Repo abstracts graph storage
type Repo interface {
	DirectIDs(ctx context.Context, userID string) ([]string, error)
	PeersOf(ctx context.Context, userIDs []string) (map[string][]string, error)
	InsertEdge(ctx context.Context, userID, peerID string) error
}

// Ports is a convenience interface for both graph ports
type Ports interface {
	SnapshotPort
	WriterPort
}

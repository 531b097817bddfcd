// Package service provides the graph service implementation
package service

import (
	"context"

	"bitebank/internal/core/socialgraph"
	"bitebank/internal/modkit/repokit"
	perr "bitebank/internal/platform/errors"
	"bitebank/internal/services/graph/domain"
)

// Svc implements domain.SnapshotPort and domain.WriterPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
}

// New constructs the graph service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("graph.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("graph.Service requires a non nil Repo binder")
	}
	return &Svc{db: db, binder: binder}
}

// Snapshot implements domain.SnapshotPort
func (s *Svc) Snapshot(ctx context.Context, userID string) (socialgraph.Snapshot, error) {
	if userID == "" {
		return socialgraph.Snapshot{}, perr.InvalidArgf("user id required")
	}
	var snap socialgraph.Snapshot
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		direct, err := r.DirectIDs(ctx, userID)
		if err != nil {
			return err
		}
		neighbors, err := r.PeersOf(ctx, direct)
		if err != nil {
			return err
		}
		snap = socialgraph.Build(userID, direct, neighbors)
		return nil
	})
	if err != nil {
		return socialgraph.Snapshot{}, perr.NotFoundf("social graph for %s: %v", userID, err)
	}
	return snap, nil
}

// Connect implements domain.WriterPort
func (s *Svc) Connect(ctx context.Context, userID, peerID string) error {
	if userID == "" || peerID == "" || userID == peerID {
		return perr.InvalidArgf("two distinct user ids required")
	}
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).InsertEdge(ctx, userID, peerID)
	})
}

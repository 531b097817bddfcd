// Package module implements the scoring service module
package module

import (
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	graphdom "bitebank/internal/services/graph/domain"
	recdom "bitebank/internal/services/recs/domain"
	repdom "bitebank/internal/services/reputation/domain"
	"bitebank/internal/services/scoring/domain"
	"bitebank/internal/services/scoring/service"
)

// Ports exposed by the scoring module
type Ports struct {
	Scorer domain.ScorerPort
}

// Module implements the scoring service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new scoring module from the collaborating ports
func New(deps modkit.Deps, graph graphdom.SnapshotPort, recs recdom.ReaderPort, tiers repdom.TierPort) *Module {
	svc := service.New(graph, recs, tiers)

	m := &Module{deps: deps}
	m.ports = Ports{Scorer: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "scoring" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

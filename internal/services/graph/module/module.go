// Package module implements the graph service module
package module

import (
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/graph/domain"
	"bitebank/internal/services/graph/repo"
	"bitebank/internal/services/graph/service"
)

// Ports exposed by the graph module
type Ports struct {
	Snapshot domain.SnapshotPort
	Writer   domain.WriterPort
}

// Module implements the graph service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new graph module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{
		Snapshot: svc,
		Writer:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "graph" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

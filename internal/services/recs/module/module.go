// Package module implements the recs service module
package module

import (
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/recs/domain"
	"bitebank/internal/services/recs/repo"
	"bitebank/internal/services/recs/service"
)

// Ports exposed by the recs module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
	// Full is the combined surface for callers that need both
	Full domain.Ports
}

// Module implements the recs service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new recs module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{
		Reader: svc,
		Writer: svc,
		Full:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "recs" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

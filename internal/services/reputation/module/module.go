// Package module implements the reputation service module
package module

import (
	"bitebank/internal/core/tier"
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/reputation/domain"
	"bitebank/internal/services/reputation/repo"
	"bitebank/internal/services/reputation/service"
)

// Ports exposed by the reputation module
type Ports struct {
	Tier domain.TierPort
	// Policy is the immutable tier configuration other modules share
	Policy tier.Config
}

// Module implements the reputation service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new reputation module
func New(deps modkit.Deps) *Module {
	policy := tier.DefaultConfig()
	svc := service.New(deps.PG, repo.NewPG(), tier.New(policy))

	m := &Module{deps: deps}
	m.ports = Ports{
		Tier:   svc,
		Policy: policy,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reputation" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

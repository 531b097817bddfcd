// Package module implements the ratelimit service module
package module

import (
	"bitebank/internal/core/tier"
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/services/ratelimit/domain"
	"bitebank/internal/services/ratelimit/repo"
	"bitebank/internal/services/ratelimit/service"
	repdom "bitebank/internal/services/reputation/domain"
)

// Ports exposed by the ratelimit module
type Ports struct {
	Limiter domain.LimiterPort
}

// Module implements the ratelimit service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new ratelimit module
// the tier port and policy come from the reputation module
func New(deps modkit.Deps, tiers repdom.TierPort, policy tier.Config) *Module {
	svc := service.New(deps.PG, repo.NewPG(), tiers, policy)

	m := &Module{deps: deps}
	m.ports = Ports{Limiter: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "ratelimit" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

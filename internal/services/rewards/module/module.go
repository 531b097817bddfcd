// Package module implements the rewards service module
package module

import (
	"bitebank/internal/core/reward"
	"bitebank/internal/core/tier"
	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	repdom "bitebank/internal/services/reputation/domain"
	"bitebank/internal/services/rewards/domain"
	"bitebank/internal/services/rewards/repo"
	"bitebank/internal/services/rewards/service"
)

// Ports exposed by the rewards module
type Ports struct {
	Ledger domain.LedgerPort
	// Tariff is the active reward table other modules consult for
	// engagement point values and the validation threshold
	Tariff reward.Tariff
}

// Module implements the rewards service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new rewards module
func New(deps modkit.Deps, tiers repdom.TierPort, policy tier.Config) *Module {
	opts := FromConfig(deps.Cfg)
	tariff := reward.MustTariff(opts.TariffVersion)

	svc := service.New(deps.PG, repo.NewPG(), tiers, tariff, policy, deps.CH, service.Config{
		HistoryLimit:   opts.HistoryLimit,
		AnalyticsTable: opts.AnalyticsTable,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Ledger: svc,
		Tariff: tariff,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "rewards" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

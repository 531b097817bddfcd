// Package module wires recs into the API using modkit
package module

import (
	"net/http"

	modkit "bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/core/reward"
	str "bitebank/internal/platform/strings"
	rechttp "bitebank/internal/services/api/recs/http"
	recsvc "bitebank/internal/services/api/recs/service"
	limdom "bitebank/internal/services/ratelimit/domain"
	recdom "bitebank/internal/services/recs/domain"
	rewdom "bitebank/internal/services/rewards/domain"
)

// Ports declares the injected worker ports for this API module
type Ports struct {
	Limiter limdom.LimiterPort
	Recs    recdom.Ports
	Ledger  rewdom.LedgerPort
	Tariff  reward.Tariff
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc recsvc.Service
}

// New constructs a recs API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("recs"),
		modkit.WithPrefix("/recs"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Limiter == nil || injected.Recs == nil || injected.Ledger == nil {
		panic("recs API module requires Limiter, Recs and Ledger ports")
	}

	svc := recsvc.New(injected.Limiter, injected.Recs, injected.Ledger, injected.Tariff)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		rechttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }

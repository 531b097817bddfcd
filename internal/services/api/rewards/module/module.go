// Package module wires rewards into the API using modkit
package module

import (
	"net/http"

	modkit "bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	str "bitebank/internal/platform/strings"
	rewhttp "bitebank/internal/services/api/rewards/http"
	rewdom "bitebank/internal/services/rewards/domain"
)

// Ports declares the injected worker port for this API module
type Ports struct {
	Ledger rewdom.LedgerPort
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

	ledger rewdom.LedgerPort
}

// New constructs a rewards API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("rewards"),
		modkit.WithPrefix("/rewards"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Ledger == nil {
		panic("rewards API module requires Ledger port (from services/rewards)")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ledger:    injected.Ledger,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		rewhttp.Register(r, m.ledger)
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

// Package module wires users into the API using modkit
package module

import (
	"net/http"

	modkit "bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	str "bitebank/internal/platform/strings"
	usershttp "bitebank/internal/services/api/users/http"
	graphdom "bitebank/internal/services/graph/domain"
	limdom "bitebank/internal/services/ratelimit/domain"
	repdom "bitebank/internal/services/reputation/domain"
)

// Ports declares the injected worker ports for this API module
type Ports struct {
	Tiers   repdom.TierPort
	Graph   graphdom.WriterPort
	Limiter limdom.LimiterPort
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

	injected Ports
}

// New constructs a users API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("users"),
		modkit.WithPrefix("/users"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Tiers == nil || injected.Graph == nil || injected.Limiter == nil {
		panic("users API module requires Tiers, Graph and Limiter ports")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		injected:  injected,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		usershttp.Register(r, usershttp.Deps{
			Tiers:   injected.Tiers,
			Graph:   injected.Graph,
			Limiter: injected.Limiter,
		})
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

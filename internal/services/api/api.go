// Package api provides the HTTP API for the application
package api

import (
	"bitebank/internal/platform/config"
	"bitebank/internal/platform/logger"
	phttp "bitebank/internal/platform/net/http"
	"bitebank/internal/platform/store"

	"bitebank/internal/modkit"
	"bitebank/internal/modkit/httpkit"
	"bitebank/internal/modkit/module"
	"bitebank/internal/modkit/swaggerkit"

	metamod "bitebank/internal/services/api/meta/module"
	apirecs "bitebank/internal/services/api/recs/module"
	apirewards "bitebank/internal/services/api/rewards/module"
	apiscoring "bitebank/internal/services/api/scoring/module"
	apiusers "bitebank/internal/services/api/users/module"

	graphmod "bitebank/internal/services/graph/module"
	ratelimitmod "bitebank/internal/services/ratelimit/module"
	recsmod "bitebank/internal/services/recs/module"
	reputationmod "bitebank/internal/services/reputation/module"
	rewardsmod "bitebank/internal/services/rewards/module"
	scoringmod "bitebank/internal/services/scoring/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Worker modules first, in dependency order. Reputation owns the tier
	// state and policy every other module consults
	reputation := reputationmod.New(deps)
	repPorts := module.MustPortsOf[reputationmod.Ports](reputation)

	graph := graphmod.New(deps)
	graphPorts := module.MustPortsOf[graphmod.Ports](graph)

	recs := recsmod.New(deps)
	recsPorts := module.MustPortsOf[recsmod.Ports](recs)

	ratelimit := ratelimitmod.New(deps, repPorts.Tier, repPorts.Policy)
	limiter := module.MustPortsOf[ratelimitmod.Ports](ratelimit).Limiter

	rewards := rewardsmod.New(deps, repPorts.Tier, repPorts.Policy)
	rewPorts := module.MustPortsOf[rewardsmod.Ports](rewards)

	scoring := scoringmod.New(deps, graphPorts.Snapshot, recsPorts.Reader, repPorts.Tier)
	scorer := module.MustPortsOf[scoringmod.Ports](scoring).Scorer

	// API modules receive the worker ports they depend on
	apiScoring := apiscoring.New(deps, modkit.WithPorts(apiscoring.Ports{
		Scorer: scorer,
	}))
	apiRecs := apirecs.New(deps, modkit.WithPorts(apirecs.Ports{
		Limiter: limiter,
		Recs:    recsPorts.Full,
		Ledger:  rewPorts.Ledger,
		Tariff:  rewPorts.Tariff,
	}))
	apiRewards := apirewards.New(deps, modkit.WithPorts(apirewards.Ports{
		Ledger: rewPorts.Ledger,
	}))
	apiUsers := apiusers.New(deps, modkit.WithPorts(apiusers.Ports{
		Tiers:   repPorts.Tier,
		Graph:   graphPorts.Writer,
		Limiter: limiter,
	}))

	mods := []module.Module{
		metamod.New(deps),
		reputation,
		graph,
		recs,
		ratelimit,
		rewards,
		scoring,
		apiScoring,
		apiRecs,
		apiRewards,
		apiUsers,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

package module

import (
	"bitebank/internal/platform/config"
)

// Options for the rewards module
type Options struct {
	TariffVersion  int
	HistoryLimit   int
	AnalyticsTable string
}

// FromConfig reads rewards options from the environment
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REWARDS_")
	return Options{
		TariffVersion:  rf.MayInt("TARIFF_VERSION", 1),
		HistoryLimit:   rf.MayInt("HISTORY_LIMIT", 100),
		AnalyticsTable: rf.MayString("ANALYTICS_TABLE", "reward_events_analytics"),
	}
}

// Package metrics exposes Prometheus collectors for the subsystem's
// operations and the handler serving them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AccountsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "userbase_accounts_created_total",
			Help: "Total accounts created",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userbase_logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // ok|rejected
	)

	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "userbase_searches_total",
			Help: "Total keyword searches executed",
		},
	)

	ProfileUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userbase_profile_updates_total",
			Help: "Total profile update attempts",
		},
		[]string{"outcome"}, // ok|rolled_back
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(AccountsCreated)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(ProfileUpdatesTotal)
}

// Package metrics defines the custom Prometheus metrics for the portal
// client pipeline. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// RequestFailuresTotal counts failed exchanges seen by the request
// mediator, labelled by failure class (connectivity, unauthorized, ...).
var RequestFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_failures_total",
		Help:      "Total number of failed exchanges, by failure class.",
	},
	[]string{"class"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "restored", "empty", or "malformed"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

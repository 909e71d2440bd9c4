// Package metrics defines and registers all custom Prometheus metrics for
// the kingdom API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kingdom"

// KingdomsCreatedTotal counts kingdoms created through the API.
var KingdomsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "kingdoms_created_total",
		Help:      "Total number of kingdoms created.",
	},
)

// ClansCreatedTotal counts clans created through the API.
var ClansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clans_created_total",
		Help:      "Total number of clans created.",
	},
)

// MembersMutatedTotal counts army member array mutations.
// Label:
//   - op: "add", "remove", or "update"
var MembersMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_mutated_total",
		Help:      "Total number of army member mutations, by operation.",
	},
	[]string{"op"},
)

// EntitiesDeletedTotal counts kingdom and clan deletions that removed a
// document. Deletes that matched nothing are not counted.
// Label:
//   - entity: "kingdom" or "clan"
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of kingdom and clan documents deleted.",
	},
	[]string{"entity"},
)

// LoginThrottledTotal counts logins rejected by the Redis attempt limiter.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of logins rejected due to too many attempts.",
	},
)

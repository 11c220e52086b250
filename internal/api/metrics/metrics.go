// Package metrics defines and registers all custom Prometheus metrics
// for the CreatorHub API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package load; HTTP-level metrics come separately from the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creatorhub"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "creator" or "buyer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ListingsCreatedTotal counts published listings.
// Label:
//   - category: the listing category supplied by the creator
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of service listings published, by category.",
	},
	[]string{"category"},
)

// ListingSearchesTotal counts listing search requests.
var ListingSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_searches_total",
		Help:      "Total number of listing search requests served.",
	},
)

// OrdersPlacedTotal counts placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

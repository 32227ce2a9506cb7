// Package metrics defines and registers all custom Prometheus metrics for the
// voluntariados API. It is the single source of truth for metric names,
// labels, and help strings. Counters are incremented by the services, so both
// API surfaces are counted in one place.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voluntariados"

// UsuariosCreatedTotal counts accounts created through either surface.
var UsuariosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usuarios_created_total",
		Help:      "Total number of usuarios created.",
	},
)

// UsuariosDeletedTotal counts accounts deleted by email.
var UsuariosDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usuarios_deleted_total",
		Help:      "Total number of usuarios deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found" or "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// VoluntariadosCreatedTotal counts postings created.
// Label:
//   - tipo: "Oferta" or "Petición"
var VoluntariadosCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "voluntariados_created_total",
		Help:      "Total number of voluntariados created, by tipo.",
	},
	[]string{"tipo"},
)

// VoluntariadosDeletedTotal counts postings deleted by id.
var VoluntariadosDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "voluntariados_deleted_total",
		Help:      "Total number of voluntariados deleted.",
	},
)

// GraphQLRequestsTotal counts requests handled by the GraphQL endpoint.
// Label:
//   - status: "ok" or "error"
var GraphQLRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_requests_total",
		Help:      "Total number of GraphQL requests, by outcome.",
	},
	[]string{"status"},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "todoapi_requests_total",
		Help: "Total number of HTTP requests handled, by method and status code.",
	},
		[]string{"method", "status"},
	)

	TodosCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todoapi_todos_created_total",
		Help: "Total number of todos successfully created.",
	})

	TodosToggledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todoapi_todos_toggled_total",
		Help: "Total number of todo completion toggles.",
	})

	TodosDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todoapi_todos_deleted_total",
		Help: "Total number of todos deleted.",
	})
)

package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "directory",
		Name:      "events_queue_depth",
		Help:      "Current number of directory events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

var eventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "events_published_total",
		Help:      "Directory events handed to the broker, by type and result (ok/error).",
	},
	[]string{"type", "result"},
)

var eventsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "events_dropped_total",
		Help:      "Directory events dropped because the worker buffer was full.",
	},
	[]string{"type"},
)

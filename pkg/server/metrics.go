package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_requests_total",
		Help: "The total number of handled requests per route",
	}, []string{"route"})
	catalogItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "directory_catalog_items",
		Help: "The number of items in the served catalog",
	})
	catalogReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "directory_catalog_reloads_total",
		Help: "The total number of successful catalog reloads",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "directory_document_cache_hits_total",
		Help: "The total number of documents served from cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "directory_document_cache_misses_total",
		Help: "The total number of documents rendered on request",
	})
)

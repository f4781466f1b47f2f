package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "location_search"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "searches_total", Help: "Searches by execution mode and outcome."},
		[]string{"mode", "outcome"}, // outcome: ok|empty|error
	)
	SearchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_duration_seconds",
			Help:    "Search duration seconds, dictionary load included.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
	DictionaryLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "dictionary_loads_total", Help: "Dictionary loads by source."},
		[]string{"source"}, // source: cache|store|error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

// InitRegistry registry riêng, không dùng DefaultRegisterer
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Searches, SearchLatency, DictionaryLoads, CacheEvents)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveSearch(mode, outcome string, dur time.Duration) {
	Searches.WithLabelValues(mode, outcome).Inc()
	SearchLatency.WithLabelValues(mode).Observe(dur.Seconds())
}

func ObserveDictionaryLoad(source string) {
	DictionaryLoads.WithLabelValues(source).Inc()
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

// Package metrics exposes Prometheus counters for the ingest worker.
// Dropped cards are routine on real pages, so they are a counter here
// rather than an error anywhere else.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GamesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pbp_games_processed_total",
		Help: "Games fetched and run through the pipeline.",
	})
	GamesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pbp_games_failed_total",
		Help: "Games that failed to fetch or persist.",
	})
	PlaysIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pbp_plays_ingested_total",
		Help: "Normalized plays written to storage.",
	})
	CardsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pbp_cards_dropped_total",
		Help: "Candidate cards rejected by the parser or completeness gate.",
	})
)

// Handler serves the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

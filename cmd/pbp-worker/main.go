// pbp-worker is the long-running variant of the ingester: it sweeps a
// list of games on an interval, paces requests politely, and serves
// Prometheus metrics. One-shot runs (no interval) exit after a pass.
package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"

	"github.com/tyler180/nfl-playbyplay-backend/internal/app/ingest"
	"github.com/tyler180/nfl-playbyplay-backend/internal/espn"
	"github.com/tyler180/nfl-playbyplay-backend/internal/metrics"
	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
	"github.com/tyler180/nfl-playbyplay-backend/internal/stream"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameIDs := ingest.SplitGameIDs(os.Getenv("GAME_IDS"))
	if len(gameIDs) == 0 {
		log.Fatal("GAME_IDS env is required (CSV of ESPN game ids)")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}

	svc := &ingest.Service{
		DDB:        dynamodb.NewFromConfig(cfg),
		PlaysTable: getenv("PLAYS_TABLE_NAME", "plays"),
		Policy:     pbp.Policy{RequirePlayType: os.Getenv("REQUIRE_PLAY_TYPE") == "1"},
	}

	// optional live fan-out
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		svc.Publisher = stream.NewPublisher(rdb)
		log.Printf("publishing normalized plays to redis at %s", addr)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		addr := getenv("METRICS_ADDR", ":9090")
		log.Printf("metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	interval := time.Duration(0)
	if s := os.Getenv("POLL_INTERVAL_SEC"); s != "" {
		if d, err := time.ParseDuration(s + "s"); err == nil {
			interval = d
		}
	}

	for {
		runPass(ctx, svc, gameIDs)
		if interval <= 0 || ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func runPass(ctx context.Context, svc *ingest.Service, gameIDs []string) {
	for i, id := range gameIDs {
		if ctx.Err() != nil {
			return
		}
		if i > 0 {
			// polite pacing with jitter between page fetches
			time.Sleep(espn.GameDelay() + time.Duration(rand.Intn(200))*time.Millisecond)
		}
		res, err := svc.ProcessGame(ctx, id)
		if err != nil {
			metrics.GamesFailed.Inc()
			log.Printf("ERROR game %s: %v", id, err)
			continue
		}
		metrics.GamesProcessed.Inc()
		metrics.PlaysIngested.Add(float64(len(res.Plays)))
		metrics.CardsDropped.Add(float64(res.Dropped))
		log.Printf("game %s: %d plays (%d of %d cards dropped)", id, len(res.Plays), res.Dropped, res.Cards)
	}
}

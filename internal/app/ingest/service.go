// Package ingest wires fetch -> pipeline -> store behind a single Lambda
// entrypoint and a reusable per-game service.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tyler180/nfl-playbyplay-backend/internal/ath"
	"github.com/tyler180/nfl-playbyplay-backend/internal/espn"
	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
	"github.com/tyler180/nfl-playbyplay-backend/internal/store"
	"github.com/tyler180/nfl-playbyplay-backend/internal/stream"
)

// Service processes single games end to end. Fetch is injectable so
// tests can feed canned HTML.
type Service struct {
	DDB        store.DynamoDBAPI
	PlaysTable string
	Policy     pbp.Policy
	Publisher  *stream.Publisher // optional live fan-out
	Fetch      func(ctx context.Context, gameID, referer string) (string, error)
}

// ProcessGame fetches one game page, runs the pipeline, and persists the
// normalized plays. The pipeline result is returned for observability.
func (s *Service) ProcessGame(ctx context.Context, gameID string) (pbp.Result, error) {
	fetch := s.Fetch
	if fetch == nil {
		fetch = espn.FetchGamePage
	}

	html, err := fetch(ctx, gameID, "https://www.espn.com/nfl/scoreboard")
	if err != nil {
		return pbp.Result{}, err
	}
	lines, err := espn.PlayLines(html)
	if err != nil {
		return pbp.Result{}, fmt.Errorf("extract lines for game %s: %w", gameID, err)
	}

	res := pbp.Run(lines, s.Policy)
	for i := range res.Plays {
		if res.Plays[i].FieldSide != "" {
			res.Plays[i].FieldSide = espn.NormalizeTeamAbbr(res.Plays[i].FieldSide)
		}
	}

	if err := store.PutPlays(ctx, s.DDB, s.PlaysTable, gameID, res.Plays); err != nil {
		return res, err
	}
	if s.Publisher != nil {
		if err := s.Publisher.PublishPlays(ctx, gameID, res.Plays); err != nil {
			// fan-out is best effort; storage already succeeded
			log.Printf("WARN publish game %s: %v", gameID, err)
		}
	}
	return res, nil
}

// LambdaEntrypoint is the single Lambda handler exported from this package.
func LambdaEntrypoint(ctx context.Context, raw Raw) (string, error) {
	var e Event
	_ = json.Unmarshal(raw, &e)

	mode := strings.TrimSpace(e.Mode)
	if mode == "" {
		mode = envStr("MODE", "ingest_plays")
	}
	debug := envBool("DEBUG", false)

	gameIDs := SplitGameIDs(e.GameIDs)
	if len(gameIDs) == 0 && e.GameID != "" {
		gameIDs = []string{e.GameID}
	}
	if len(gameIDs) == 0 {
		gameIDs = SplitGameIDs(envStr("GAME_IDS", ""))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("aws config: %w", err)
	}
	ddb := dynamodb.NewFromConfig(awsCfg)

	switch mode {
	case "ingest_plays":
		return runIngest(ctx, ddb, gameIDs, debug)

	case "materialize_game_summary":
		return runSummaries(ctx, ddb, gameIDs)

	case "materialize_athena":
		return runAthena(ctx, awsCfg, e.Season)

	case "all":
		if msg, err := runIngest(ctx, ddb, gameIDs, debug); err != nil {
			return msg, err
		}
		return runSummaries(ctx, ddb, gameIDs)

	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func runIngest(ctx context.Context, ddb *dynamodb.Client, gameIDs []string, debug bool) (string, error) {
	if len(gameIDs) == 0 {
		return "", fmt.Errorf("no game ids: set game_id/game_ids in the event or GAME_IDS env")
	}
	svc := &Service{
		DDB:        ddb,
		PlaysTable: envStr("PLAYS_TABLE_NAME", "plays"),
		Policy:     pbp.Policy{RequirePlayType: envBool("REQUIRE_PLAY_TYPE", false)},
	}

	total, dropped := 0, 0
	for i, id := range gameIDs {
		if i > 0 {
			time.Sleep(espn.GameDelay())
		}
		res, err := svc.ProcessGame(ctx, id)
		if err != nil {
			return "", fmt.Errorf("game %s: %w", id, err)
		}
		total += len(res.Plays)
		dropped += res.Dropped
		if debug {
			log.Printf("DEBUG game %s: cards=%d plays=%d dropped=%d", id, res.Cards, len(res.Plays), res.Dropped)
		}
	}
	msg := fmt.Sprintf("OK ingest: %d plays (%d cards dropped) across %d games", total, dropped, len(gameIDs))
	log.Print(msg)
	return msg, nil
}

func runSummaries(ctx context.Context, ddb *dynamodb.Client, gameIDs []string) (string, error) {
	if len(gameIDs) == 0 {
		return "", fmt.Errorf("no game ids: set game_id/game_ids in the event or GAME_IDS env")
	}
	playsTable := envStr("PLAYS_TABLE_NAME", "plays")
	summaryTable := envStr("SUMMARY_TABLE_NAME", "game_summaries")

	for _, id := range gameIDs {
		plays, err := store.GetPlays(ctx, ddb, playsTable, id)
		if err != nil {
			return "", err
		}
		if err := store.PutGameSummary(ctx, ddb, summaryTable, store.Summarize(id, plays)); err != nil {
			return "", err
		}
	}
	msg := fmt.Sprintf("OK summaries: %d games into %s", len(gameIDs), summaryTable)
	log.Print(msg)
	return msg, nil
}

func runAthena(ctx context.Context, awsCfg aws.Config, season string) (string, error) {
	seasonInt := envInt("SEASON", time.Now().Year())
	if season != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(season)); err == nil {
			seasonInt = n
		}
	}
	db := envStr("ATHENA_DB", "")
	if db == "" {
		return "", fmt.Errorf("missing env ATHENA_DB")
	}

	r := &ath.Runner{
		Client:    athena.NewFromConfig(awsCfg),
		Workgroup: envStr("ATHENA_WORKGROUP", "primary"),
		Database:  db,
		OutputS3:  envStr("ATHENA_OUTPUT_S3", ""),
		Logger:    log.Default(),
	}
	rows, err := r.MaterializeSeason(ctx, seasonInt)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("OK athena: %s.%s season %d (%d rows)", db, ath.TableName, seasonInt, rows)
	log.Print(msg)
	return msg, nil
}

// Package stream publishes normalized plays to Redis Streams for live
// consumers (score tickers, alerting). Persistence stays in the store
// package; this is fan-out only.
package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
)

// StreamAPI is the slice of the redis client the publisher needs.
type StreamAPI interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// playMessage is the wire shape; field names follow the plays table
// columns so stream consumers and DB readers see the same vocabulary.
type playMessage struct {
	GameID        string   `json:"game_id"`
	Sequence      int      `json:"play_sequence"`
	Quarter       int      `json:"quarter"`
	TimeRemaining string   `json:"time_remaining"`
	Down          int      `json:"down,omitempty"`
	Distance      int      `json:"distance,omitempty"`
	YardsGained   *int     `json:"yards_gained,omitempty"`
	PlayType      string   `json:"play_type"`
	Description   string   `json:"play_description"`
	Players       []string `json:"players,omitempty"`
	Touchdown     bool     `json:"touchdown"`
	Penalty       bool     `json:"penalty"`
	Turnover      bool     `json:"turnover"`
}

type Publisher struct {
	rdb StreamAPI
}

func NewPublisher(rdb StreamAPI) *Publisher {
	return &Publisher{rdb: rdb}
}

// StreamKey returns the per-game stream name.
func StreamKey(gameID string) string {
	return fmt.Sprintf("pbp.normalized.%s", gameID)
}

// PublishPlays appends plays to the game's stream in sequence order.
func (p *Publisher) PublishPlays(ctx context.Context, gameID string, plays []pbp.Play) error {
	key := StreamKey(gameID)
	for _, play := range plays {
		data, err := json.Marshal(playMessage{
			GameID:        gameID,
			Sequence:      play.Sequence,
			Quarter:       play.Quarter,
			TimeRemaining: play.TimeRemaining,
			Down:          play.Down,
			Distance:      play.Distance,
			YardsGained:   play.YardsGained,
			PlayType:      string(play.Type),
			Description:   play.Description,
			Players:       play.Players,
			Touchdown:     play.Touchdown,
			Penalty:       play.Penalty,
			Turnover:      play.Turnover,
		})
		if err != nil {
			return fmt.Errorf("marshal play %d: %w", play.Sequence, err)
		}
		if err := p.rdb.XAdd(ctx, &redis.XAddArgs{
			Stream: key,
			Values: map[string]interface{}{"data": string(data)},
		}).Err(); err != nil {
			return fmt.Errorf("publish play %d to %s: %w", play.Sequence, key, err)
		}
	}
	return nil
}

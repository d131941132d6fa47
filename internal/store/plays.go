// Package store persists normalized plays in DynamoDB. Items are keyed by
// (GameID, Sequence), so a put is an idempotent upsert and re-scraping a
// game never duplicates rows.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// PutPlays writes plays for one game in batches of 25 with retries for
// UnprocessedItems. PK=GameID (S), SK=Sequence (N).
func PutPlays(ctx context.Context, ddb DynamoDBAPI, table, gameID string, plays []pbp.Play) error {
	if len(plays) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(plays); i += maxBatch {
		end := i + maxBatch
		if end > len(plays) {
			end = len(plays)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, p := range plays[i:end] {
			if p.Sequence <= 0 || p.Quarter == 0 || p.TimeRemaining == "" {
				continue
			}
			item := map[string]types.AttributeValue{
				"GameID":        &types.AttributeValueMemberS{Value: gameID},
				"Sequence":      &types.AttributeValueMemberN{Value: strconv.Itoa(p.Sequence)},
				"Quarter":       &types.AttributeValueMemberN{Value: strconv.Itoa(p.Quarter)},
				"TimeRemaining": &types.AttributeValueMemberS{Value: p.TimeRemaining},
				"Down":          &types.AttributeValueMemberN{Value: strconv.Itoa(p.Down)},
				"Distance":      &types.AttributeValueMemberN{Value: strconv.Itoa(p.Distance)},
				"PlayType":      &types.AttributeValueMemberS{Value: string(p.Type)},
				"Description":   &types.AttributeValueMemberS{Value: p.Description},
				"Touchdown":     &types.AttributeValueMemberBOOL{Value: p.Touchdown},
				"Penalty":       &types.AttributeValueMemberBOOL{Value: p.Penalty},
				"Turnover":      &types.AttributeValueMemberBOOL{Value: p.Turnover},
				"UpdatedAt":     &types.AttributeValueMemberN{Value: now},
			}
			if p.YardsGained != nil {
				item["YardsGained"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*p.YardsGained)}
			}
			if p.FieldSide != "" {
				item["FieldSide"] = &types.AttributeValueMemberS{Value: p.FieldSide}
				item["YardLine"] = &types.AttributeValueMemberN{Value: strconv.Itoa(p.YardLine)}
			}
			if p.RawType != "" {
				item["RawType"] = &types.AttributeValueMemberS{Value: p.RawType}
			}
			if len(p.Players) > 0 {
				item["Players"] = &types.AttributeValueMemberS{Value: strings.Join(p.Players, ",")}
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write plays for game %s: %w", gameID, err)
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		time.Sleep(backoff)
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
)

type DynamoDBReadAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// GetPlays reads every stored play for a game, paginating the query, and
// returns them in sequence order.
func GetPlays(ctx context.Context, ddb DynamoDBReadAPI, table, gameID string) ([]pbp.Play, error) {
	var plays []pbp.Play

	var lastKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			KeyConditionExpression: aws.String("GameID = :g"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":g": &types.AttributeValueMemberS{Value: gameID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query plays for game %s: %w", gameID, err)
		}

		for _, it := range out.Items {
			p := pbp.Play{
				Sequence:      getNum(it, "Sequence"),
				Quarter:       getNum(it, "Quarter"),
				TimeRemaining: getStr(it, "TimeRemaining"),
				Down:          getNum(it, "Down"),
				Distance:      getNum(it, "Distance"),
				FieldSide:     getStr(it, "FieldSide"),
				YardLine:      getNum(it, "YardLine"),
				Type:          pbp.PlayType(getStr(it, "PlayType")),
				RawType:       getStr(it, "RawType"),
				Description:   getStr(it, "Description"),
				Touchdown:     getBool(it, "Touchdown"),
				Penalty:       getBool(it, "Penalty"),
				Turnover:      getBool(it, "Turnover"),
			}
			if _, ok := it["YardsGained"]; ok {
				n := getNum(it, "YardsGained")
				p.YardsGained = &n
			}
			if s := getStr(it, "Players"); s != "" {
				p.Players = strings.Split(s, ",")
			}
			plays = append(plays, p)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(plays, func(i, j int) bool { return plays[i].Sequence < plays[j].Sequence })
	return plays, nil
}

// GameSummary is the per-game rollup row.
type GameSummary struct {
	GameID     string
	Plays      int
	Touchdowns int
	Turnovers  int
	Penalties  int
	ByType     map[string]int
}

// Summarize aggregates stored plays into the rollup the original loaders
// re-derived with ad-hoc SQL.
func Summarize(gameID string, plays []pbp.Play) GameSummary {
	s := GameSummary{GameID: gameID, ByType: map[string]int{}}
	for _, p := range plays {
		s.Plays++
		if p.Touchdown {
			s.Touchdowns++
		}
		if p.Turnover {
			s.Turnovers++
		}
		if p.Penalty {
			s.Penalties++
		}
		s.ByType[string(p.Type)]++
	}
	return s
}

// PutGameSummary upserts the rollup row keyed by GameID. UpdateItem with
// SET creates the item when absent.
func PutGameSummary(ctx context.Context, ddb DynamoDBAPI, table string, s GameSummary) error {
	byType, err := json.Marshal(s.ByType)
	if err != nil {
		return fmt.Errorf("marshal play type counts: %w", err)
	}
	now := strconv.FormatInt(time.Now().Unix(), 10)

	_, err = ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"GameID": &types.AttributeValueMemberS{Value: s.GameID},
		},
		UpdateExpression: aws.String("SET PlayCount=:p, Touchdowns=:td, Turnovers=:tn, Penalties=:pe, PlayTypes=:pt, UpdatedAt=:now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":   &types.AttributeValueMemberN{Value: strconv.Itoa(s.Plays)},
			":td":  &types.AttributeValueMemberN{Value: strconv.Itoa(s.Touchdowns)},
			":tn":  &types.AttributeValueMemberN{Value: strconv.Itoa(s.Turnovers)},
			":pe":  &types.AttributeValueMemberN{Value: strconv.Itoa(s.Penalties)},
			":pt":  &types.AttributeValueMemberS{Value: string(byType)},
			":now": &types.AttributeValueMemberN{Value: now},
		},
	})
	if err != nil {
		return fmt.Errorf("put summary for game %s: %w", s.GameID, err)
	}
	return nil
}

// ---------- helpers (local to store) ----------

func getStr(m map[string]types.AttributeValue, key string) string {
	if v, ok := m[key]; ok {
		if s, ok2 := v.(*types.AttributeValueMemberS); ok2 {
			return s.Value
		}
	}
	return ""
}

func getNum(m map[string]types.AttributeValue, key string) int {
	if v, ok := m[key]; ok {
		switch t := v.(type) {
		case *types.AttributeValueMemberN:
			n, _ := strconv.Atoi(t.Value)
			return n
		case *types.AttributeValueMemberS:
			n, _ := strconv.Atoi(t.Value)
			return n
		}
	}
	return 0
}

func getBool(m map[string]types.AttributeValue, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok2 := v.(*types.AttributeValueMemberBOOL); ok2 {
			return b.Value
		}
	}
	return false
}

package ingest

import "encoding/json"

// Event is the Lambda payload.
type Event struct {
	Mode    string `json:"mode"`     // ingest_plays | materialize_game_summary | materialize_athena | all
	GameID  string `json:"game_id"`  // single game
	GameIDs string `json:"game_ids"` // CSV ("401671698,401671699"); wins over game_id
	Season  string `json:"season"`   // e.g. "2024"; athena mode only
}

// Raw is used by the Lambda entrypoint to avoid tight coupling to the
// event type at the edge.
type Raw = json.RawMessage

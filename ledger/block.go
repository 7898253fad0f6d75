package ledger

import "github.com/brentyelle/koikoi-server-client/domain/koikoi"

// Block records one counted round of a game.
type Block struct {
	Index     int                `json:"index"`
	Timestamp int64              `json:"timestamp"`
	PrevHash  string             `json:"prev_hash"`
	Hash      string             `json:"hash"`
	GameID    string             `json:"game_id"`
	Result    koikoi.RoundResult `json:"result"`
	Metadata  Metadata           `json:"metadata"`
}

type Metadata struct {
	Extra map[string]string `json:"extra,omitempty"`
}

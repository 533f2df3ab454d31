package ledger

import "github.com/luca-patrignani/mental-mukjjippa/domain/mjp"

// Block is a single round of the match.
type Block struct {
	Index     int             `json:"index"`
	Timestamp int64           `json:"timestamp"`
	PrevHash  string          `json:"prev_hash"`
	Hash      string          `json:"hash"`
	Round     mjp.RoundRecord `json:"round"`
	Metadata  Metadata        `json:"metadata"`
}

type Metadata struct {
	MatchID string            `json:"match_id"`
	Players [2]string         `json:"players"`
	Extra   map[string]string `json:"extra,omitempty"`
}

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
)

type Blockchain struct {
	mu     sync.RWMutex
	gameID string
	blocks []Block
}

// NewBlockchain creates the round history of a game with its genesis block.
// The genesis block has index 0, previous hash "0" and an empty result.
func NewBlockchain(gameID string) *Blockchain {
	bc := &Blockchain{
		gameID: gameID,
		blocks: make([]Block, 0, 13),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		GameID:    gameID,
	}
	genesis.Hash = bc.calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append adds the result of the next round. It fails if the round does not
// directly follow the latest recorded one. The extra parameter can optionally
// carry additional metadata.
func (bc *Blockchain) Append(res koikoi.RoundResult, extra ...map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		GameID:    bc.gameID,
		Result:    res,
		Metadata:  Metadata{Extra: extraMsg},
	}
	newBlock.Hash = bc.calculateHash(newBlock)

	if err := bc.validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Results returns the recorded round results in order, without the genesis block.
func (bc *Blockchain) Results() []koikoi.RoundResult {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]koikoi.RoundResult, 0, len(bc.blocks)-1)
	for _, b := range bc.blocks[1:] {
		out = append(out, b.Result)
	}
	return out
}

// Verify checks the genesis block and every link of the chain.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}
	if bc.blocks[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis block")
	}
	if h := bc.calculateHash(bc.blocks[0]); h != bc.blocks[0].Hash {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := bc.validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks index continuity, hash linkage, the block's own hash,
// the game it belongs to, that rounds are recorded in sequence and that the
// running totals follow from the points awarded.
func (bc *Blockchain) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := bc.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	if current.GameID != bc.gameID {
		return fmt.Errorf("block belongs to game %s, not %s", current.GameID, bc.gameID)
	}
	if current.Result.Round != previous.Result.Round+1 {
		return fmt.Errorf("invalid round: expected %d, got %d", previous.Result.Round+1, current.Result.Round)
	}
	want := previous.Result.Totals
	if current.Result.Scored {
		want[current.Result.Scorer] += current.Result.Points
	}
	if current.Result.Totals != want {
		return fmt.Errorf("invalid totals: expected %v, got %v", want, current.Result.Totals)
	}
	return nil
}

// calculateHash computes the SHA256 of the block's index, timestamp, previous
// hash, game and JSON-encoded result and metadata.
func (bc *Blockchain) calculateHash(block Block) string {
	resultBytes, _ := json.Marshal(block.Result)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		block.GameID,
		string(resultBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

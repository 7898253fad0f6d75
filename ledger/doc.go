// Package ledger implements an append-only, hash-chained history of the
// rounds of a Koi-Koi game.
//
// # Core Components
//
// Blockchain: the ordered log of round results. Every block carries the hash
// of its predecessor so any later modification is detectable.
//
// Block: one counted round, with the dealer, the scorer, the points awarded,
// the running totals and how the round ended.
//
// # Usage
//
// Create a Blockchain with the game ID and append every RoundResult as the
// game reports it, typically from a koikoi.WithRoundHook callback. Verify can
// be called at any time to check the chain is intact.
package ledger

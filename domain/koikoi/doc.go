// Package koikoi implements the Koi-Koi round and turn state machines on top
// of package hanafuda.
//
// # Core Types
//
// Game: owns the deck, both hands, the table and both score piles, and runs
// rounds until the configured count is reached.
//
// Decider: the source of every choice a side makes. The human side is backed
// by an interactive prompt, the machine side by package cpu.
//
// Observer: receives an Event for everything a renderer may want to show.
//
// # Round Flow
//
// Setup → InstantWinCheck → Playing → Settlement. A table dealt with four
// pairs or four of a kind is redealt without counting as a round. Each turn
// runs PhaseHand → PhaseDeck → PhaseContinue → PhaseDone.
package koikoi

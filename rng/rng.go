// Package rng provides the single random source shared by a koi-koi process.
//
// The source is created once at start-up and passed explicitly to the deck
// shuffle, the initial dealer draw and the CPU policy. Nothing in the module
// reseeds it afterwards.
package rng

import (
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

// Source is the subset of *rand.Rand used by the engine.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

var suite = suites.MustFind("Ed25519")

// New returns a ChaCha8 generator seeded from the Ed25519 suite random stream.
func New() *rand.Rand {
	var seed [32]byte
	suite.RandomStream().XORKeyStream(seed[:], seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeeded returns a deterministic generator. Equal seeds give equal games.
func NewSeeded(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

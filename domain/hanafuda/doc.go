// Package hanafuda implements the 48-card Hanafuda deck and the card logic
// used by Koi-Koi: card legality, collections, the matching relation and
// yaku scoring.
//
// # Core Types
//
// Card: an immutable (Month, Design) pair. Only the 48 legal combinations
// can be built through NewCard.
//
// Deck: the card supply. Draw takes the most recently added card and
// Shuffle permutes the remaining cards with an injected random source.
//
// Collection: a sorted sequence of cards used for hands and the table.
//
// ScorePile: a Collection of captured cards plus a read-only Scorer that
// evaluates yaku over it.
//
// # Matching
//
// Matches is deliberately asymmetric: Lightning offered from a hand or the
// deck captures any table card, but Lightning lying on the table is captured
// only by another November card.
package hanafuda

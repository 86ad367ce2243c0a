// Package poker implements five-card hand evaluation and scoring.
//
// # Core Types
//
// Card: an immutable (Rank, Suit) pair. Cards parse from mnemonics such as
// "AS", "10D" or "Th".
//
// Hand: exactly five distinct cards, validated by NewHand. Invalid input
// yields an *InvalidHandError.
//
// Category: the poker classification, ordered from HighCard to StraightFlush.
//
// # Evaluation
//
// Classify assigns exactly one Category to a Hand. A ScoreTable turns the pair
// (Hand, Category) into a Score made of a per-category base value plus a
// tie-break summed from the card ranks. DefaultScoreTable keeps every higher
// category above every lower one.
//
// Strength and Compare rank hands by the standard poker order, including
// kickers, and Winners picks the best hands of a showdown.
//
// Every function here is pure; hands may be evaluated from many goroutines.
package poker

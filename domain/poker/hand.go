package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

var (
	ErrWrongCardCount = errors.New("a hand must contain exactly 5 cards")
	ErrDuplicateCard  = errors.New("duplicate card")
)

// InvalidHandError is returned by NewHand when the cards do not form a valid
// hand. It unwraps to ErrWrongCardCount, ErrDuplicateCard or ErrInvalidCard.
type InvalidHandError struct {
	Reason    error
	Count     int
	Duplicate Card
}

func (e *InvalidHandError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrWrongCardCount):
		return fmt.Sprintf("invalid hand: %v, got %d", e.Reason, e.Count)
	case errors.Is(e.Reason, ErrDuplicateCard):
		return fmt.Sprintf("invalid hand: %v %s", e.Reason, e.Duplicate.Code())
	default:
		return fmt.Sprintf("invalid hand: %v", e.Reason)
	}
}

func (e *InvalidHandError) Unwrap() error {
	return e.Reason
}

// Hand is an immutable set of five distinct cards. The zero value is not a
// valid hand; build one with NewHand or ParseHand.
type Hand struct {
	cards [HandSize]Card
}

// NewHand validates the cards and builds a Hand.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, &InvalidHandError{Reason: ErrWrongCardCount, Count: len(cards)}
	}
	var h Hand
	seen := make(map[Card]struct{}, HandSize)
	for i, c := range cards {
		if !c.rank.Valid() || !c.suit.Valid() {
			return Hand{}, &InvalidHandError{
				Reason: fmt.Errorf("%w at position %d", ErrInvalidCard, i+1),
				Count:  len(cards),
			}
		}
		if _, dup := seen[c]; dup {
			return Hand{}, &InvalidHandError{Reason: ErrDuplicateCard, Count: len(cards), Duplicate: c}
		}
		seen[c] = struct{}{}
		h.cards[i] = c
	}
	return h, nil
}

// ParseHand parses card mnemonics (see ParseCard) and builds a Hand.
// Parse failures wrap ErrInvalidCard; structural failures are *InvalidHandError.
func ParseHand(codes ...string) (Hand, error) {
	cards, err := ParseCards(codes...)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// Cards returns a copy of the cards in construction order.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// RankCounts maps every rank present in the hand to its number of cards.
func (h Hand) RankCounts() map[Rank]int {
	counts := make(map[Rank]int, HandSize)
	for _, c := range h.cards {
		counts[c.rank]++
	}
	return counts
}

// SuitCounts maps every suit present in the hand to its number of cards.
func (h Hand) SuitCounts() map[Suit]int {
	counts := make(map[Suit]int, len(Suits))
	for _, c := range h.cards {
		counts[c.suit]++
	}
	return counts
}

// SortedRanks returns the five ranks in ascending order.
func (h Hand) SortedRanks() [HandSize]Rank {
	var ranks [HandSize]Rank
	for i, c := range h.cards {
		ranks[i] = c.rank
	}
	sort.Slice(ranks[:], func(i, j int) bool {
		return ranks[i] < ranks[j]
	})
	return ranks
}

// Codes returns the plain mnemonics of the cards in construction order.
func (h Hand) Codes() []string {
	codes := make([]string, 0, HandSize)
	for _, c := range h.cards {
		codes = append(codes, c.Code())
	}
	return codes
}

func (h Hand) String() string {
	parts := make([]string, 0, HandSize)
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

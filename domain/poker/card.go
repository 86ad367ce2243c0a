package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrInvalidCard is wrapped by every card parsing and validation failure.
var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card. The zero value is not a valid rank.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the numeric value used for scoring: 2..10, Jack=11, Queen=12,
// King=13, Ace=14.
func (r Rank) Value() int {
	return int(r)
}

// LowValue is Value with Ace counted as 1, as it is in the A-2-3-4-5 straight.
func (r Rank) LowValue() int {
	if r == Ace {
		return 1
	}
	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", r)
	}
	return "?"
}

// Suit of a card. Suits have no order, only equality.
type Suit uint8

const (
	Spade Suit = iota + 1
	Heart
	Diamond
	Club
)

// Suits lists every suit.
var Suits = []Suit{Spade, Heart, Diamond, Club}

// Valid reports whether s is one of the 4 suits.
func (s Suit) Valid() bool {
	return s >= Spade && s <= Club
}

// Glyph returns the unicode symbol of the suit (♠, ♥, ♦, ♣).
func (s Suit) Glyph() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single letter mnemonic of the suit (S, H, D, C).
func (s Suit) Letter() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Diamond:
		return "D"
	case Club:
		return "C"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	return s.Glyph()
}

// Card represents a playing card with rank and suit.
// Two cards are equal iff both fields match, so Card can be compared with ==.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ConvertCard converts a raw deck index in 1..52 with the suit order
// ♣clubs -> ♦diamonds -> ♥hearts -> ♠spades and ranks ace-first within a suit.
func ConvertCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: deck index %d out of range", ErrInvalidCard, rawCard)
	}
	suit := []Suit{Club, Diamond, Heart, Spade}[(rawCard-1)/13]
	rank := Rank((rawCard-1)%13 + 1)
	if rank == 1 {
		rank = Ace
	}
	return NewCard(rank, suit)
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// Code returns the plain mnemonic of the card, e.g. "AS" or "10D".
func (c Card) Code() string {
	return c.rank.String() + c.suit.Letter()
}

// String returns a human-readable representation of the Card using suit
// symbols coloured for the terminal (red hearts and diamonds).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Heart, Diamond:
		suit = pterm.LightRed(c.suit.Glyph())
	case Spade, Club:
		suit = pterm.Black(c.suit.Glyph())
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

var rankSymbols = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "T": Ten, "J": Jack, "Q": Queen,
	"K": King, "A": Ace,
}

var suitSymbols = map[string]Suit{
	"S": Spade, "H": Heart, "D": Diamond, "C": Club,
	"♠": Spade, "♥": Heart, "♦": Diamond, "♣": Club,
	"♤": Spade, "♡": Heart, "♢": Diamond, "♧": Club,
}

// ParseCard parses a card mnemonic such as "AS", "10d", "Th" or "A♠".
// The rank comes first, followed by exactly one suit symbol.
func ParseCard(s string) (Card, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	runes := []rune(text)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, ok := rankSymbols[string(runes[:len(runes)-1])]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}
	suit, ok := suitSymbols[string(runes[len(runes)-1])]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	return NewCard(rank, suit)
}

// ParseCards parses every mnemonic, stopping at the first failure.
func ParseCards(codes ...string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for i, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

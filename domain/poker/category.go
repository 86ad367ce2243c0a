package poker

import "fmt"

// Category is the poker classification of a hand. Categories are ordered by
// strength, so they can be compared with < and >.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category from the weakest to the strongest.
var Categories = []Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

var categoryNames = []string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

var categoryKeys = []string{
	"high_card",
	"pair",
	"two_pair",
	"three_of_a_kind",
	"straight",
	"flush",
	"full_house",
	"four_of_a_kind",
	"straight_flush",
}

// Valid reports whether c is one of the nine categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= StraightFlush
}

// String returns the display name, e.g. "Two Pair".
func (c Category) String() string {
	if c.Valid() {
		return categoryNames[c]
	}
	return "Unknown"
}

// Key returns the snake_case identifier used in JSON and YAML, e.g. "two_pair".
func (c Category) Key() string {
	if c.Valid() {
		return categoryKeys[c]
	}
	return "unknown"
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category: %d", int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, key := range categoryKeys {
		if key == string(text) || categoryNames[i] == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", string(text))
}

package poker

import (
	"fmt"
	"sort"

	"github.com/paulhankin/poker"
)

// Classify returns the category of the hand. Categories are checked from the
// strongest down and the first match wins.
func Classify(h Hand) Category {
	flush := isFlush(h)
	straight := isStraight(h)
	counts := countDistribution(h)

	switch {
	case flush && straight:
		return StraightFlush
	case counts[4] == 1:
		return FourOfAKind
	case counts[3] == 1 && counts[2] == 1:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case counts[3] == 1 && counts[2] == 0:
		return ThreeOfAKind
	case counts[2] == 2:
		return TwoPair
	case counts[2] == 1:
		return Pair
	default:
		return HighCard
	}
}

// countDistribution maps a multiplicity to the number of ranks appearing that
// many times: {3:1, 2:1} is a full house.
func countDistribution(h Hand) map[int]int {
	dist := make(map[int]int, 4)
	for _, n := range h.RankCounts() {
		dist[n]++
	}
	return dist
}

func isFlush(h Hand) bool {
	suits := h.SuitCounts()
	if len(suits) != 1 {
		return false
	}
	for _, n := range suits {
		return n == HandSize
	}
	return false
}

func isStraight(h Hand) bool {
	if len(h.RankCounts()) != HandSize {
		return false
	}
	ranks := h.SortedRanks()
	if ranks[HandSize-1].Value()-ranks[0].Value() == HandSize-1 {
		return true
	}
	return IsLowAceStraight(h)
}

// IsLowAceStraight reports whether the ranks are exactly A-2-3-4-5, the only
// straight in which the Ace counts as 1.
func IsLowAceStraight(h Hand) bool {
	return h.SortedRanks() == [HandSize]Rank{Two, Three, Four, Five, Ace}
}

// libraryCards converts the hand for github.com/paulhankin/poker, which
// numbers suits club, diamond, heart, spade from 0 and ranks ace-first from 1.
func libraryCards(h Hand) ([HandSize]poker.Card, error) {
	var out [HandSize]poker.Card
	for i, c := range h.cards {
		suit := map[Suit]uint8{Club: 0, Diamond: 1, Heart: 2, Spade: 3}[c.suit]
		rank := uint8(c.rank)
		if c.rank == Ace {
			rank = 1
		}
		card, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
		if err != nil {
			return [HandSize]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

// Strength is the standard poker strength of the hand: higher is better and
// equal strengths are exact ties. Unlike Score it breaks every tie by kickers.
func Strength(h Hand) int16 {
	cards, err := libraryCards(h)
	if err != nil {
		// unreachable for a Hand built by NewHand
		return 0
	}
	return poker.Eval5(&cards)
}

// Describe returns a human description of the hand such as
// "two pair, aces and tens". It falls back to the category name.
func Describe(h Hand) string {
	cards, err := libraryCards(h)
	if err != nil {
		return Classify(h).String()
	}
	desc, err := poker.Describe(cards[:])
	if err != nil {
		return Classify(h).String()
	}
	return desc
}

// Compare orders two hands by category and then by Strength.
// It returns -1 if a loses, 0 on a tie and +1 if a wins.
func Compare(a, b Hand) int {
	ca, cb := Classify(a), Classify(b)
	if ca != cb {
		if ca > cb {
			return 1
		}
		return -1
	}
	sa, sb := Strength(a), Strength(b)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

// Winners returns the indices of the hands tied for best, in ascending order.
// It returns nil when hands is empty.
func Winners(hands []Hand) []int {
	if len(hands) == 0 {
		return nil
	}
	order := make([]int, len(hands))
	for i := range order {
		order[i] = i
	}
	// sort by strength descending, stable on index
	sort.SliceStable(order, func(i, j int) bool {
		return Compare(hands[order[i]], hands[order[j]]) > 0
	})

	best := order[0]
	winners := []int{best}
	for _, idx := range order[1:] {
		if Compare(hands[idx], hands[best]) != 0 {
			break
		}
		winners = append(winners, idx)
	}
	sort.Ints(winners)
	return winners
}

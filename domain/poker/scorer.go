package poker

import "fmt"

// Score is the numeric value of a classified hand.
type Score int

// MinMonotonicSpacing is the smallest distance between consecutive base
// values that keeps every hand of a higher category above every hand of a
// lower one. Tie-breaks never exceed 5*14 = 70.
const MinMonotonicSpacing = 71

// ScoreTable maps categories to base values as index(category) * spacing.
type ScoreTable struct {
	spacing int
}

var (
	// DefaultScoreTable spaces base values by 100: HighCard=0, Pair=100, ...,
	// StraightFlush=800.
	DefaultScoreTable = ScoreTable{spacing: 100}
	// LegacyScoreTable uses HighCard=0, Pair=10, ..., StraightFlush=80.
	// A strong hand can outscore a weak hand of the next category with it.
	LegacyScoreTable = ScoreTable{spacing: 10}
)

// NewScoreTable returns a monotonic table with the given spacing.
func NewScoreTable(spacing int) (ScoreTable, error) {
	if spacing < MinMonotonicSpacing {
		return ScoreTable{}, fmt.Errorf("score spacing %d is below the minimum of %d", spacing, MinMonotonicSpacing)
	}
	return ScoreTable{spacing: spacing}, nil
}

// Spacing returns the distance between consecutive base values.
func (t ScoreTable) Spacing() int {
	return t.spacing
}

// Monotonic reports whether a higher category always outscores a lower one.
func (t ScoreTable) Monotonic() bool {
	return t.spacing >= MinMonotonicSpacing
}

// BaseValue returns the base value of the category.
func (t ScoreTable) BaseValue(c Category) int {
	return int(c) * t.spacing
}

// Score returns BaseValue(c) + TieBreak(h, c).
func (t ScoreTable) Score(h Hand, c Category) Score {
	return Score(t.BaseValue(c) + TieBreak(h, c))
}

// TieBreak returns the rank contribution of the cards forming category c.
//
// Straights, flushes and high cards sum all five ranks (Ace is 1 in A-2-3-4-5).
// The paired categories sum count*value over the repeated ranks only, so
// A A 10 10 K contributes 14*2 + 10*2 = 48 and the king kicker nothing.
func TieBreak(h Hand, c Category) int {
	switch c {
	case HighCard, Flush:
		return sumRanks(h, false)
	case Straight, StraightFlush:
		return sumRanks(h, IsLowAceStraight(h))
	default:
		sum := 0
		for r, n := range h.RankCounts() {
			if n >= 2 {
				sum += n * r.Value()
			}
		}
		return sum
	}
}

func sumRanks(h Hand, lowAce bool) int {
	sum := 0
	for _, c := range h.cards {
		if lowAce {
			sum += c.rank.LowValue()
		} else {
			sum += c.rank.Value()
		}
	}
	return sum
}

// Evaluation is the full result of scoring one hand.
type Evaluation struct {
	Hand        Hand
	Category    Category
	TieBreak    int
	Score       Score
	Strength    int16
	Description string
}

// Evaluate classifies and scores the hand with the given table.
func Evaluate(h Hand, t ScoreTable) Evaluation {
	c := Classify(h)
	return Evaluation{
		Hand:        h,
		Category:    c,
		TieBreak:    TieBreak(h, c),
		Score:       t.Score(h, c),
		Strength:    Strength(h),
		Description: Describe(h),
	}
}

// Explain renders the evaluation as "<category> (Final Score: <score>)".
func (e Evaluation) Explain() string {
	return fmt.Sprintf("%s (Final Score: %d)", e.Category, e.Score)
}

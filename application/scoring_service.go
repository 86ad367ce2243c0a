// Package application wires the pure hand evaluator to the outer surfaces:
// it parses card mnemonics, builds hands, scores them concurrently and logs.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/hand-scorer/domain/poker"
	"github.com/luca-patrignani/hand-scorer/handfile"
)

// Outcome is the result of scoring one named hand. Err is set instead of
// Evaluation when the cards do not form a valid hand.
type Outcome struct {
	Name       string
	Cards      []string
	Evaluation poker.Evaluation
	Err        error
	Winner     bool
}

// ScoringService scores hands with a fixed score table.
type ScoringService struct {
	table       poker.ScoreTable
	concurrency int
	logger      *slog.Logger
}

// NewScoringService returns a service. concurrency below 1 is treated as 1
// and a nil logger discards output.
func NewScoringService(table poker.ScoreTable, concurrency int, logger *slog.Logger) *ScoringService {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ScoringService{table: table, concurrency: concurrency, logger: logger}
}

// Table returns the score table in use.
func (s *ScoringService) Table() poker.ScoreTable {
	return s.table
}

// ScoreHand parses the mnemonics and evaluates the hand.
func (s *ScoringService) ScoreHand(ctx context.Context, codes []string) (poker.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return poker.Evaluation{}, err
	}
	h, err := poker.ParseHand(codes...)
	if err != nil {
		s.logger.Debug("rejected hand", "cards", codes, "error", err)
		return poker.Evaluation{}, err
	}
	ev := poker.Evaluate(h, s.table)
	s.logger.Debug("scored hand", "cards", h.Codes(), "category", ev.Category.String(), "score", int(ev.Score))
	return ev, nil
}

// ScoreBatch scores every entry concurrently. Invalid hands are reported in
// their Outcome and do not stop the batch; only cancellation of ctx does.
// Outcomes keep the order of entries and the valid hands tied for best are
// marked as winners.
func (s *ScoringService) ScoreBatch(ctx context.Context, entries []handfile.Entry) ([]Outcome, error) {
	outcomes := make([]Outcome, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ev, err := s.ScoreHand(gctx, entry.Cards)
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			outcomes[i] = Outcome{Name: entry.Name, Cards: entry.Cards, Evaluation: ev}
			if err != nil {
				outcomes[i].Err = fmt.Errorf("hand %q: %w", entry.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	markWinners(outcomes)
	s.logger.Info("scored batch", "hands", len(entries), "invalid", countInvalid(outcomes))
	return outcomes, nil
}

func markWinners(outcomes []Outcome) {
	var hands []poker.Hand
	var index []int
	for i, o := range outcomes {
		if o.Err == nil {
			hands = append(hands, o.Evaluation.Hand)
			index = append(index, i)
		}
	}
	for _, w := range poker.Winners(hands) {
		outcomes[index[w]].Winner = true
	}
}

func countInvalid(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// WinnerNames returns the names of the winning outcomes, never nil.
func WinnerNames(outcomes []Outcome) []string {
	names := []string{}
	for _, o := range outcomes {
		if o.Winner {
			names = append(names, o.Name)
		}
	}
	return names
}

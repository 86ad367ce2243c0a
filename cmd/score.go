package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newScoreCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "score CARD...",
		Short: "Score one hand, e.g. score AS AH 10D 10C KS",
		Long: `Score one five-card hand. Cards are a rank (2-10, T, J, Q, K, A)
followed by a suit (S, H, D, C or a suit glyph). The cards may also be
given as a single quoted argument.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				args = strings.Fields(args[0])
			}
			ev, err := a.service.ScoreHand(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !explain {
				_, err = fmt.Fprintln(out, ev.Score)
				return err
			}
			if _, err := fmt.Fprintln(out, ev.Explain()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, evaluationPanel(ev))
			return err
		},
	}
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "print the category and a breakdown of the score")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/handfile"
)

func newFileCmd(a *app, v *viper.Viper) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "file PATH",
		Short: "Score every hand listed in a YAML hand file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := handfile.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("hand file loaded", "path", args[0], "hands", len(f.Hands))

			outcomes, err := a.service.ScoreBatch(cmd.Context(), f.Hands)
			if err != nil {
				return err
			}
			table, err := resultsTable(outcomes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table)
			if winners := application.WinnerNames(outcomes); len(winners) > 0 {
				fmt.Fprintf(out, "Winner: %s\n", strings.Join(winners, ", "))
			}

			invalid := 0
			for _, o := range outcomes {
				if o.Err != nil {
					invalid++
					a.logger.Warn("invalid hand", "name", o.Name, "error", o.Err)
				}
			}
			if strict && invalid > 0 {
				return fmt.Errorf("%d of %d hands are invalid", invalid, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any hand is invalid")
	cmd.Flags().Int("concurrency", 8, "number of hands scored in parallel")
	mustBind(v, "batch.concurrency", cmd.Flags().Lookup("concurrency"))
	return cmd
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lianlian/level"
)

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels of the pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.pack()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tGRID\tTYPES\tTIME\tGOAL\tEXTRAS")
			for _, l := range p.Levels {
				fmt.Fprintf(tw, "%d\t%d×%d\t%d\t%s\t%s\t%s\n",
					l.ID, l.InnerRows, l.InnerCols, l.TileTypes, l.TimeLimit(), goalText(l.Goal), extras(l))
			}
			return tw.Flush()
		},
	}
}

func goalText(g level.Goal) string {
	if g.Kind == level.GoalClearTarget {
		return fmt.Sprintf("%s(%d)", g.Kind, g.Target)
	}
	return string(g.Kind)
}

func extras(l level.Config) string {
	s := "-"
	if len(l.Obstacles) > 0 {
		s = fmt.Sprintf("obstacles=%v", l.Obstacles)
	}
	if l.RewardNode {
		if s == "-" {
			return "reward"
		}
		s += " reward"
	}
	return s
}

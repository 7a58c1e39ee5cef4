package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lianlian/game"
	"github.com/katalvlaran/lianlian/link"
)

// maxStuckShuffles is how many fruitless Shuffle props play spends before
// giving up on a stuck board.
const maxStuckShuffles = 3

func newPlayCmd(a *app) *cobra.Command {
	var (
		levelID  int
		maxMoves int
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Auto-play a level using hints",
		Long: `Play a generated level by always taking the hinted pair.
Stuck boards are reshuffled with the shuffle prop.

Examples:
  lianlian play --level 1 --seed 42
  lianlian play -l 5 --max-moves 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.level(levelID)
			if err != nil {
				return err
			}
			s, err := game.NewSession(cfg, game.WithSeed(a.seed()), game.WithLogger(a.log))
			if err != nil {
				return err
			}
			if _, err := s.Start(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			stuck := 0
			for move := 1; (maxMoves <= 0 || move <= maxMoves) && !s.Over(); {
				if s.State() == game.StateStuck {
					if stuck == maxStuckShuffles {
						break
					}
					stuck++
					if _, err := s.Shuffle(); err != nil {
						return err
					}
					fmt.Fprintf(out, "shuffle: %s\n", s.State())
					continue
				}
				hint, err := s.Hint()
				if err != nil {
					return err
				}
				if hint == nil {
					break
				}
				if _, err := s.Click(hint.A); err != nil {
					return err
				}
				res, err := s.Click(hint.B)
				if err != nil {
					return err
				}
				if res.Kind != game.OutcomeRemoved {
					return fmt.Errorf("hinted pair %v-%v was not removed: %s", hint.A, hint.B, res.Kind)
				}
				if !quiet {
					fmt.Fprintf(out, "move %d: %v-%v via %v (%d turns)\n",
						move, hint.A, hint.B, res.Pair.Path, link.Turns(res.Pair.Path))
				}
				move++
			}

			sum := s.Finish()
			fmt.Fprintf(out, "result: %s, pairs removed: %d, tiles left: %d, props: %v\n",
				sum.Result, sum.PairsRemoved, sum.TilesLeft, sum.PropsUsed)
			fmt.Fprintf(out, "elapsed: %s of %s\n", s.Elapsed().Round(time.Millisecond), cfg.TimeLimit())
			return nil
		},
	}
	cmd.Flags().IntVarP(&levelID, "level", "l", 1, "Level id")
	cmd.Flags().IntVar(&maxMoves, "max-moves", 0, "Stop after this many removals, 0 for no limit")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the summary")
	return cmd
}

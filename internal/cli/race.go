package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slatelang/slate/internal/game"
)

func newRaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "race",
		Short: "Run the corridor racer demo",
		Long:  `Run the corridor racer, a raytraced terminal toy: steer with the arrow keys, collect coins, dodge the red spheres.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := game.Run()
			if err != nil {
				printError("Game crashed: %v", err)
				return err
			}
			printSuccess("Final score: %s", styleValue.Render(strconv.Itoa(score)))
			return nil
		},
	}
}

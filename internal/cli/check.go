package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cubebag/internal/infra/logger"
)

func checkCmd(flags *rootFlags) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:          "check [input]",
		Short:        "Parse the input without computing answers",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace(false))
			if err != nil {
				return err
			}

			inputPath := resolveInputPath(ws, args, input)
			games, err := ws.games.LoadGames(cmd.Context(), inputPath)
			if err != nil {
				return err
			}
			logger.L().Info("games.loaded", "input", inputPath, "count", len(games))

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d games)\n", len(games))
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (defaults to paths.input, i.e. input.txt)")
	return c
}

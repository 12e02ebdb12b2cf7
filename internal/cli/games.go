package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/cubebag/internal/domain"
	"github.com/aalvaropc/cubebag/internal/infra/logger"
	"github.com/aalvaropc/cubebag/internal/usecase"
)

type gamesTheme struct {
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Possible   lipgloss.Style
	Impossible lipgloss.Style
	Footer     lipgloss.Style
}

func defaultGamesTheme() gamesTheme {
	return gamesTheme{
		Header:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:       lipgloss.NewStyle().Padding(0, 1),
		Possible:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("42")),
		Impossible: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("203")),
		Footer:     lipgloss.NewStyle().Faint(true),
	}
}

func gamesCmd(flags *rootFlags) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:          "games [input]",
		Short:        "Show every game with its minimum pick and power",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace(false))
			if err != nil {
				return err
			}

			inputPath := resolveInputPath(ws, args, input)
			summaries, err := usecase.NewSolve(ws.games).Summaries(cmd.Context(), inputPath)
			if err != nil {
				return err
			}
			logger.L().Info("games.loaded", "input", inputPath, "count", len(summaries))

			printGames(cmd.OutOrStdout(), summaries, defaultGamesTheme())
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (defaults to paths.input, i.e. input.txt)")
	return c
}

const possibleCol = 1

func printGames(w io.Writer, summaries []domain.GameSummary, theme gamesTheme) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "(no games found)")
		return
	}

	var part1, part2 uint64
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		mark := "✗"
		if s.Possible {
			mark = "✓"
			part1 += uint64(s.ID)
		}
		part2 += s.Power

		rows = append(rows, []string{
			strconv.FormatUint(uint64(s.ID), 10),
			mark,
			strconv.FormatUint(uint64(s.MinimumPick.Red), 10),
			strconv.FormatUint(uint64(s.MinimumPick.Green), 10),
			strconv.FormatUint(uint64(s.MinimumPick.Blue), 10),
			strconv.FormatUint(s.Power, 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GAME", "POSSIBLE", "RED", "GREEN", "BLUE", "POWER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.Header
			case col != possibleCol || row < 0 || row >= len(summaries):
				return theme.Cell
			case summaries[row].Possible:
				return theme.Possible
			default:
				return theme.Impossible
			}
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, theme.Footer.Render(fmt.Sprintf("possible id sum %d · power sum %d", part1, part2)))
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cubebag/internal/domain"
	"github.com/aalvaropc/cubebag/internal/infra/logger"
	"github.com/aalvaropc/cubebag/internal/usecase"
)

func solveCmd(flags *rootFlags) *cobra.Command {
	var input string
	var format string
	var save bool

	c := &cobra.Command{
		Use:          "cubebag [input]",
		Short:        "Check cube game records against the bag and sum the answers",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace(save))
			if err != nil {
				return err
			}

			f := strings.TrimSpace(format)
			if f == "" {
				f = ws.cfg.Output.Format
			}
			if err := checkFormat(f); err != nil {
				return err
			}

			inputPath := resolveInputPath(ws, args, input)

			uc := usecase.NewSolve(ws.games, usecase.WithReportStore(ws.store))
			report, reportID, err := uc.Execute(cmd.Context(), inputPath)
			if err != nil && report.FinishedAt.IsZero() {
				return err
			}

			// A failed save still leaves valid answers to print.
			if perr := printAnswers(cmd.OutOrStdout(), report, f); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}

			logger.L().Info("solve.finished",
				"input", inputPath,
				"games", report.Games,
				"possible", report.PossibleGames,
				"part1", report.Part1,
				"part2", report.Part2,
			)
			if reportID != "" {
				logger.L().Info("report.saved", "id", reportID, "report_id", report.ID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file (defaults to paths.input, i.e. input.txt)")
	c.Flags().StringVar(&format, "format", "", "Output format: plain|json (defaults to output.format, i.e. plain)")
	c.Flags().BoolVar(&save, "save", false, "Save a JSON report under the reports directory")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "plain", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected plain|json)", format)
	}
}

func printAnswers(w io.Writer, report domain.Report, format string) error {
	switch format {
	case "plain", "":
		_, err := fmt.Fprintf(w, "part 1 %d\npart 2 %d\n", report.Part1, report.Part2)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]uint64{
			"part1": report.Part1,
			"part2": report.Part2,
		})
	default:
		return fmt.Errorf("unsupported format %q (expected plain|json)", format)
	}
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cubebag/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	config   string
	debug    bool
	failFast bool
}

func (f *rootFlags) workspace(save bool) workspaceOptions {
	return workspaceOptions{
		configPath: f.config,
		failFast:   f.failFast,
		save:       save,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := solveCmd(flags)
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger.Setup(logger.Config{
			Output: cmd.ErrOrStderr(),
			Debug:  flags.debug,
		})
	}

	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to cubebag.yaml (optional; searched upward from the working directory)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write JSON debug logs to stderr")
	cmd.PersistentFlags().BoolVar(&flags.failFast, "fail-fast", false, "Stop at the first malformed line instead of reporting all of them")

	cmd.AddCommand(checkCmd(flags))
	cmd.AddCommand(gamesCmd(flags))
	cmd.AddCommand(versionCmd())
	return cmd
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/cubebag/internal/domain"
	"github.com/aalvaropc/cubebag/internal/infra/gamefile"
	"github.com/aalvaropc/cubebag/internal/infra/reportstore"
	"github.com/aalvaropc/cubebag/internal/infra/workspacefinder"
	"github.com/aalvaropc/cubebag/internal/ports"
)

type workspaceCtx struct {
	root string // directory relative config paths resolve against
	wd   string
	cfg  domain.Config

	games ports.GameLoader
	store ports.ReportStore
}

type workspaceOptions struct {
	configPath string
	failFast   bool
	save       bool
}

func loadWorkspace(opts workspaceOptions) (*workspaceCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root, cfg, err := resolveConfig(workspacefinder.NewFinder(), wd, opts.configPath)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:  root,
		wd:    wd,
		cfg:   cfg,
		games: gamefile.NewLoader(gamefile.WithFailFast(opts.failFast)),
	}
	if opts.save {
		ws.store = reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))
	}
	return ws, nil
}

// resolveConfig uses an explicit --config path when given; otherwise it looks for
// cubebag.yaml upward from wd and falls back to defaults rooted at wd.
func resolveConfig(locator ports.WorkspaceLocator, wd, configFlag string) (string, domain.Config, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", domain.Config{}, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := workspacefinder.LoadConfig(abs)
		if err != nil {
			return "", domain.Config{}, err
		}
		return filepath.Dir(abs), cfg, nil
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, domain.DefaultConfig(), nil
		}
		return "", domain.Config{}, err
	}

	cfg, err := workspacefinder.LoadConfig(filepath.Join(root, workspacefinder.ConfigFile))
	if err != nil {
		return "", domain.Config{}, err
	}
	return root, cfg, nil
}

// resolveInputPath picks the positional argument, then --input, then the
// configured input. User-supplied paths are relative to the working directory,
// configured ones to the config root.
func resolveInputPath(ws *workspaceCtx, args []string, inputFlag string) string {
	in := ""
	if len(args) > 0 {
		in = strings.TrimSpace(args[0])
	}
	if in == "" {
		in = strings.TrimSpace(inputFlag)
	}
	if in != "" {
		if filepath.IsAbs(in) {
			return filepath.Clean(in)
		}
		return filepath.Join(ws.wd, in)
	}

	p := ws.cfg.Paths.Input
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	return filepath.Clean(p)
}

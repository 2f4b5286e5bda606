package cmd

import (
	"fmt"
	"os"

	"github.com/nodekit/pmx/internal/logger"
	"github.com/nodekit/pmx/internal/pm"
	"github.com/nodekit/pmx/internal/project"
	"github.com/nodekit/pmx/internal/runner"
)

// projectContext is everything a subcommand needs before building a command.
type projectContext struct {
	proj project.Project
	mgr  pm.Manager
}

// startDir resolves the --dir flag, defaulting to the current directory.
func startDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	return os.Getwd()
}

// resolve locates the project and detects its manager. Every subcommand calls
// this fresh in its RunE so the detected manager is never stale; nothing is
// cached between operations.
func resolve() (projectContext, error) {
	start, err := startDir()
	if err != nil {
		return projectContext{}, err
	}
	proj, err := project.Locate(start)
	if err != nil {
		return projectContext{}, err
	}
	mgr, err := pm.Detect(start)
	if err != nil {
		return projectContext{}, err
	}
	return projectContext{proj: proj, mgr: mgr}, nil
}

// newRunLog opens the per-run log file for verb, falling back to a discard
// logger when the cache directory is unavailable.
func newRunLog(verb string) *logger.Logger {
	dir, err := logger.DefaultDir()
	if err != nil {
		return logger.NewDiscard()
	}
	log, err := logger.New(dir, verb)
	if err != nil {
		return logger.NewDiscard()
	}
	return log
}

// execute runs inv from the project root. Interactive invocations get the
// terminal directly; everything else runs behind the spinner with output
// streaming into the run log.
func execute(ctx projectContext, verb string, inv pm.Invocation) error {
	log := newRunLog(verb)
	defer log.Close()
	log.Printf("project %s (%s)", ctx.proj.Root, ctx.mgr)

	r := &runner.Runner{Dir: ctx.proj.Root, Log: log}

	if inv.Interactive {
		fmt.Printf("  $ %s\n", inv.String())
		return r.Run(inv)
	}

	sp := newSpinner()
	sp.setLabel(inv.String())
	r.OnLine = sp.setDetail

	sp.start()
	err := r.Run(inv)
	sp.stop(err)
	return err
}

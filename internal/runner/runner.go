// Package runner executes package-manager invocations and streams their
// output. It also owns the one local mutation pmx performs itself: removing
// node_modules for the clean command.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/nodekit/pmx/internal/logger"
	"github.com/nodekit/pmx/internal/pm"
)

// Progress is one line of subprocess output.
type Progress struct {
	Line string
}

// ErrAborted means the user declined the clean confirmation.
var ErrAborted = errors.New("aborted")

// Runner executes invocations inside a project directory.
type Runner struct {
	// Dir is the working directory for every invocation, normally the
	// project root.
	Dir string
	Log *logger.Logger
	// OnLine, if set, receives each captured output line (spinner detail).
	OnLine func(line string)
}

// Run executes inv in r.Dir. Interactive invocations get the caller's
// terminal so the tool's own prompts work; everything else is captured
// line by line into the log and OnLine.
func (r *Runner) Run(inv pm.Invocation) error {
	r.Log.Printf("$ %s", inv.String())

	cmd := exec.Command(inv.Bin, inv.Args...)
	cmd.Dir = r.Dir

	if inv.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", inv.Bin, err)
		}
		return nil
	}

	ch := make(chan Progress, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range ch {
			if p.Line == "" {
				continue
			}
			r.Log.Printf("  %s", p.Line)
			if r.OnLine != nil {
				r.OnLine(p.Line)
			}
		}
	}()

	err := capture(cmd, ch)
	close(ch)
	<-done // wait for the drain so no buffered line is lost
	if err != nil {
		return fmt.Errorf("%s: %w", inv.Bin, err)
	}
	return nil
}

// capture starts cmd and feeds every non-blank stdout/stderr line into ch.
func capture(cmd *exec.Cmd, ch chan<- Progress) error {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan struct{}, 2)
	pipe := func(r interface{ Read([]byte) (int, error) }) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				ch <- Progress{Line: line}
			}
		}
		done <- struct{}{}
	}
	go pipe(stdout)
	go pipe(stderr)
	<-done
	<-done

	return cmd.Wait()
}

// Clean removes <root>/node_modules after confirm approves the exact target
// path. The join goes through securejoin so a hostile root cannot resolve
// outside itself. Removing an absent directory is a no-op and confirm is not
// called for it.
func (r *Runner) Clean(root string, confirm func(target string) (bool, error)) error {
	target, err := securejoin.SecureJoin(root, "node_modules")
	if err != nil {
		return fmt.Errorf("resolve node_modules: %w", err)
	}
	if _, err := os.Stat(target); os.IsNotExist(err) {
		r.Log.Printf("nothing to clean: %s", target)
		return nil
	}

	ok, err := confirm(target)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	r.Log.Printf("removing %s", target)
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("remove node_modules: %w", err)
	}
	return nil
}

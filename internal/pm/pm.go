// Package pm identifies which JavaScript package manager a project uses and
// translates logical operations into exact command-line invocations.
// Use Detect() to obtain the manager for a project, then Build() to assemble
// a command for it.
package pm

import (
	"errors"
	"fmt"

	"github.com/nodekit/pmx/internal/project"
)

// Manager is one of the JavaScript package managers pmx knows how to drive.
type Manager int

const (
	Npm Manager = iota
	Yarn
	Pnpm
)

// ErrNoLockfile means no recognized lockfile exists between the start
// directory and the filesystem root, so the manager cannot be inferred.
var ErrNoLockfile = errors.New("no lockfile found")

// ErrUnknownManager is returned by Parse for names other than npm, yarn, pnpm.
var ErrUnknownManager = errors.New("unknown package manager")

// String returns the manager's binary name.
func (m Manager) String() string {
	switch m {
	case Yarn:
		return "yarn"
	case Pnpm:
		return "pnpm"
	default:
		return "npm"
	}
}

// Parse maps a binary name to a Manager. Used for config and flag input.
func Parse(name string) (Manager, error) {
	switch name {
	case "npm":
		return Npm, nil
	case "yarn":
		return Yarn, nil
	case "pnpm":
		return Pnpm, nil
	}
	return Npm, fmt.Errorf("%w: %q", ErrUnknownManager, name)
}

// lockfileRules define detection priority. The order is a user-visible
// contract: a project carrying both package-lock.json and yarn.lock resolves
// to npm, never yarn.
var lockfileRules = []struct {
	manager  Manager
	lockfile string
}{
	{Npm, "package-lock.json"},
	{Yarn, "yarn.lock"},
	{Pnpm, "pnpm-lock.yaml"},
}

// Detect walks upward from startDir probing for each manager's lockfile in
// priority order and returns the manager of the first rule that matches.
// Lockfiles are existence-checked only, never read. The result is computed
// fresh on every call; callers must not cache it across operations.
func Detect(startDir string) (Manager, error) {
	for _, rule := range lockfileRules {
		if _, ok := project.FindUp(startDir, rule.lockfile); ok {
			return rule.manager, nil
		}
	}
	return Npm, fmt.Errorf("%w walking up from %s", ErrNoLockfile, startDir)
}

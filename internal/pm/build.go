package pm

import (
	"errors"
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

// Op is a logical package-manager operation.
type Op int

const (
	OpInit Op = iota
	OpInstall
	OpInstallSave
	OpInstallSaveDev
	OpUninstall
	OpList
	OpRun
)

var opNames = map[Op]string{
	OpInit:           "init",
	OpInstall:        "install",
	OpInstallSave:    "install-save",
	OpInstallSaveDev: "install-save-dev",
	OpUninstall:      "uninstall",
	OpList:           "list",
	OpRun:            "run",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Invocation is a fully assembled command line ready to hand to a runner.
type Invocation struct {
	Bin  string
	Args []string
	// Interactive marks commands expected to prompt the user (init); the
	// runner attaches the caller's terminal instead of capturing output.
	Interactive bool
}

// String renders the invocation as a shell-quoted command line.
func (inv Invocation) String() string {
	return shellquote.Join(append([]string{inv.Bin}, inv.Args...)...)
}

// ErrUnsupportedOp means Build was handed an operation outside the dispatch
// table. The operation set is closed, so hitting this is a programming error;
// it fails loudly rather than silently no-op.
var ErrUnsupportedOp = errors.New("unsupported operation")

// Build translates op into the exact invocation for mgr. Yarn has its own
// spelling for add/remove; pnpm shares npm's syntax for every operation.
// Extra args are passed through verbatim, empty strings included.
func Build(op Op, mgr Manager, args ...string) (Invocation, error) {
	yarn := mgr == Yarn
	var sub []string
	interactive := false

	switch op {
	case OpInit:
		sub = []string{"init"}
		interactive = true
	case OpInstall:
		sub = []string{"install"}
	case OpInstallSave:
		if yarn {
			sub = []string{"add"}
		} else {
			sub = []string{"install"}
		}
	case OpInstallSaveDev:
		if yarn {
			sub = []string{"add", "--dev"}
		} else {
			sub = []string{"install", "--save-dev"}
		}
	case OpUninstall:
		if yarn {
			sub = []string{"remove"}
		} else {
			sub = []string{"uninstall"}
		}
	case OpList:
		sub = []string{"list", "--depth=0"}
	case OpRun:
		sub = []string{"run"}
	default:
		return Invocation{}, fmt.Errorf("%w: %s for %s", ErrUnsupportedOp, op, mgr)
	}

	return Invocation{
		Bin:         mgr.String(),
		Args:        append(sub, args...),
		Interactive: interactive,
	}, nil
}

// Package project locates the enclosing JavaScript project by walking up the
// directory tree until a package.json is found.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks a project root.
const ManifestName = "package.json"

// maxDepth bounds the upward walk. A plain tree terminates at the filesystem
// root on its own; the bound guards against symlink loops.
const maxDepth = 256

// ErrProjectNotFound means no package.json exists between the start directory
// and the filesystem root.
var ErrProjectNotFound = errors.New("no package.json found")

// Project is a resolved project root.
type Project struct {
	// Root is the absolute directory that directly contains package.json.
	Root string
	// Manifest is the absolute path to Root/package.json.
	Manifest string
}

// Locate walks upward from startDir (inclusive) and returns the first
// directory containing a package.json.
func Locate(startDir string) (Project, error) {
	dir, ok := FindUp(startDir, ManifestName)
	if !ok {
		return Project{}, fmt.Errorf("%w walking up from %s", ErrProjectNotFound, startDir)
	}
	return Project{Root: dir, Manifest: filepath.Join(dir, ManifestName)}, nil
}

// FindUp walks from startDir (inclusive) toward the filesystem root and
// returns the first directory that directly contains a regular file named
// filename. The second return value is false when no ancestor has it.
func FindUp(startDir, filename string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for i := 0; i < maxDepth; i++ {
		info, err := os.Stat(filepath.Join(dir, filename))
		if err == nil && info.Mode().IsRegular() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
	return "", false
}

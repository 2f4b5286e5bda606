package pm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// touch creates an empty file, making parents as needed.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestDetectPerLockfile verifies that each lockfile maps to its manager.
func TestDetectPerLockfile(t *testing.T) {
	cases := []struct {
		lockfile string
		want     Manager
	}{
		{"package-lock.json", Npm},
		{"yarn.lock", Yarn},
		{"pnpm-lock.yaml", Pnpm},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, tc.lockfile))

		got, err := Detect(dir)
		if err != nil {
			t.Fatalf("Detect() with %s: error = %v", tc.lockfile, err)
		}
		if got != tc.want {
			t.Errorf("Detect() with %s = %s, want %s", tc.lockfile, got, tc.want)
		}
	}
}

// TestDetectPriority verifies that npm wins when several lockfiles coexist.
// The priority order npm → yarn → pnpm is a user-visible contract.
func TestDetectPriority(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "package-lock.json"))
	touch(t, filepath.Join(dir, "yarn.lock"))
	touch(t, filepath.Join(dir, "pnpm-lock.yaml"))

	got, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != Npm {
		t.Errorf("Detect() = %s, want npm", got)
	}
}

// TestDetectYarnBeatsPnpm verifies the middle of the priority order.
func TestDetectYarnBeatsPnpm(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "yarn.lock"))
	touch(t, filepath.Join(dir, "pnpm-lock.yaml"))

	got, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != Yarn {
		t.Errorf("Detect() = %s, want yarn", got)
	}
}

// TestDetectWalksUp verifies that a lockfile in an ancestor directory is
// found from a nested start directory.
func TestDetectWalksUp(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "pnpm-lock.yaml"))
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Detect(nested)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != Pnpm {
		t.Errorf("Detect() = %s, want pnpm", got)
	}
}

// TestDetectAncestorPriority verifies that rule order beats directory
// proximity: an npm lockfile far up the tree outranks a yarn lockfile in the
// start directory.
func TestDetectAncestorPriority(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "package-lock.json"))
	nested := filepath.Join(root, "app")
	touch(t, filepath.Join(nested, "yarn.lock"))

	got, err := Detect(nested)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != Npm {
		t.Errorf("Detect() = %s, want npm", got)
	}
}

// TestDetectNoLockfile verifies that Detect terminates and fails with
// ErrNoLockfile when no ancestor has a recognized lockfile.
func TestDetectNoLockfile(t *testing.T) {
	dir := t.TempDir()

	_, err := Detect(dir)
	if err == nil {
		t.Fatal("Detect() expected error, got nil")
	}
	if !errors.Is(err, ErrNoLockfile) {
		t.Errorf("Detect() error = %v, want ErrNoLockfile", err)
	}
}

// TestManagerString verifies binary names for all managers.
func TestManagerString(t *testing.T) {
	cases := map[Manager]string{Npm: "npm", Yarn: "yarn", Pnpm: "pnpm"}
	for mgr, want := range cases {
		if got := mgr.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(mgr), got, want)
		}
	}
}

// TestParseRoundTrip verifies Parse accepts every manager's name.
func TestParseRoundTrip(t *testing.T) {
	for _, mgr := range []Manager{Npm, Yarn, Pnpm} {
		got, err := Parse(mgr.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", mgr.String(), err)
		}
		if got != mgr {
			t.Errorf("Parse(%q) = %v, want %v", mgr.String(), got, mgr)
		}
	}
}

// TestParseUnknown verifies that unknown names fail with ErrUnknownManager.
func TestParseUnknown(t *testing.T) {
	_, err := Parse("bun")
	if !errors.Is(err, ErrUnknownManager) {
		t.Errorf("Parse(\"bun\") error = %v, want ErrUnknownManager", err)
	}
}

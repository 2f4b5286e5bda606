package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with trivial content, making parents as needed.
func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestLocateInRoot verifies that Locate finds a package.json in the start
// directory itself.
func TestLocateInRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName))

	proj, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if proj.Root != dir {
		t.Errorf("Root = %q, want %q", proj.Root, dir)
	}
	if proj.Manifest != filepath.Join(dir, ManifestName) {
		t.Errorf("Manifest = %q, want %q", proj.Manifest, filepath.Join(dir, ManifestName))
	}
}

// TestLocateWalksUp verifies that Locate finds the manifest from a nested
// subdirectory and returns the ancestor that holds it.
func TestLocateWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName))
	nested := filepath.Join(root, "src", "components", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	proj, err := Locate(nested)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if proj.Root != root {
		t.Errorf("Root = %q, want %q", proj.Root, root)
	}
}

// TestLocateNotFound verifies that Locate terminates and fails with
// ErrProjectNotFound when no ancestor has a package.json.
func TestLocateNotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Locate(dir)
	if err == nil {
		t.Fatal("Locate() expected error, got nil")
	}
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Locate() error = %v, want ErrProjectNotFound", err)
	}
}

// TestLocateStopsAtNearest verifies that the closest manifest wins when both
// a directory and its ancestor have one.
func TestLocateStopsAtNearest(t *testing.T) {
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ManifestName))
	inner := filepath.Join(outer, "packages", "app")
	writeFile(t, filepath.Join(inner, ManifestName))

	proj, err := Locate(inner)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if proj.Root != inner {
		t.Errorf("Root = %q, want inner %q", proj.Root, inner)
	}
}

// TestFindUpIgnoresDirectories verifies that a directory named like the
// target file does not count as a match.
func TestFindUpIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ManifestName), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, ok := FindUp(dir, ManifestName); ok {
		t.Error("FindUp() matched a directory, want no match")
	}
}

// TestFindUpOtherFilename verifies the shared probe works for arbitrary
// filenames (the lockfile detector relies on this).
func TestFindUpOtherFilename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yarn.lock"))
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := FindUp(nested, "yarn.lock")
	if !ok {
		t.Fatal("FindUp() found nothing, want match")
	}
	if got != root {
		t.Errorf("FindUp() = %q, want %q", got, root)
	}
}

package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%s) error = %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestResolve_NewProject(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	proj, err := Resolve("my-site")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if proj.Name != "my-site" {
		t.Errorf("Name = %q, want my-site", proj.Name)
	}
	want := filepath.Join(base, "my-site")
	if resolved, _ := filepath.EvalSymlinks(filepath.Dir(proj.Path)); resolved != mustEval(t, base) {
		t.Errorf("Path parent = %q, want %q", resolved, base)
	}
	if filepath.Base(proj.Path) != "my-site" {
		t.Errorf("Path = %q, want leaf my-site", proj.Path)
	}

	// The leaf is left for scaffolding.
	if _, err := os.Stat(want); !os.IsNotExist(err) {
		t.Errorf("leaf directory exists, want it left uncreated")
	}
}

func TestResolve_ExistingSiblingConflicts(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	if err := os.Mkdir(filepath.Join(base, "taken"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve("taken")

	var conflict *DirectoryConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error = %v, want DirectoryConflictError", err)
	}
}

func TestResolve_ExistingFileConflicts(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	if err := os.WriteFile(filepath.Join(base, "taken"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var conflict *DirectoryConflictError
	if _, err := Resolve("taken"); !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error = %v, want DirectoryConflictError", err)
	}
}

func TestResolve_CurrentDirectoryAllowed(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	proj, err := Resolve(".")
	if err != nil {
		t.Fatalf("Resolve(.) error = %v, want current directory allowed", err)
	}
	if proj.Name == "" {
		t.Error("Name is empty")
	}
}

func TestResolve_CreatesMissingAncestorsAndChdirs(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	proj, err := Resolve(filepath.Join("nested", "deeper", "my-site"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	parent := filepath.Dir(proj.Path)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		t.Errorf("parent %s not created: %v", parent, err)
	}

	cwd, _ := os.Getwd()
	if mustEval(t, cwd) != mustEval(t, parent) {
		t.Errorf("cwd = %q, want %q", cwd, parent)
	}
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

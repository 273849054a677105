// Package project resolves the target project location on disk.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hatchdev/hatch/internal/session"
)

// DirectoryConflictError is returned when the resolved project path
// already exists and is not the current working directory.
type DirectoryConflictError struct {
	Path string
}

func (e *DirectoryConflictError) Error() string {
	return fmt.Sprintf("directory already exists at %s, pick a different project name", e.Path)
}

// Resolve turns a user-supplied project name into its absolute location,
// creates the missing ancestors of its parent, and moves the process's
// working directory to that parent. The leaf directory itself is left for
// the scaffolding step to create. Using the current directory as the
// target is allowed even though it exists.
func Resolve(name string) (session.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return session.Project{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := filepath.Abs(name)
	if err != nil {
		return session.Project{}, fmt.Errorf("failed to resolve %q: %w", name, err)
	}

	if path != cwd {
		if _, err := os.Stat(path); err == nil {
			return session.Project{}, &DirectoryConflictError{Path: path}
		}
	}

	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return session.Project{}, fmt.Errorf("failed to create %s: %w", parent, err)
	}
	if err := os.Chdir(parent); err != nil {
		return session.Project{}, fmt.Errorf("failed to enter %s: %w", parent, err)
	}

	return session.Project{
		Name: filepath.Base(path),
		Path: path,
	}, nil
}

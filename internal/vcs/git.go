// Package vcs manages optional git setup for the bootstrapped project.
package vcs

import (
	"context"
	"strings"

	"github.com/hatchdev/hatch/internal/run"
)

const (
	// notARepoMarker is the substring git prints when a status query runs
	// outside a repository.
	notARepoMarker = "not a git repository"

	// fallbackBranch is used when git has no configured default branch.
	fallbackBranch = "main"

	initialCommitMessage = "Initial commit (by hatch CLI)"
)

// Manager wraps the git binary behind the shared process runner.
type Manager struct {
	runner run.Runner
}

// NewManager creates a git manager over the given runner.
func NewManager(runner run.Runner) *Manager {
	return &Manager{runner: runner}
}

// ToolAvailable reports whether the git binary works at all.
func (m *Manager) ToolAvailable(ctx context.Context) bool {
	_, err := m.runner.Run(ctx, "git", []string{"--version"}, run.Options{Silent: true})
	return err == nil
}

// InsideRepo reports whether path is already under version control.
// Any failure of the status query is treated as "not a repository" so the
// pipeline can still offer to initialize one.
func (m *Manager) InsideRepo(ctx context.Context, path string) bool {
	out, err := m.runner.Run(ctx, "git", []string{"status"}, run.Options{Dir: path, Silent: true})
	if err != nil {
		return false
	}
	return !strings.Contains(out, notARepoMarker)
}

// initAttempt is one way of initializing a repository. Attempts run in
// order; only the last one's failure propagates.
type initAttempt struct {
	args []string
}

// Init creates a new repository at path. It first asks git for its
// configured default branch name, falling back to "main", and requests
// that branch at init time. Older git versions without --initial-branch
// get a plain init instead, which is never allowed to escalate the
// original failure.
func (m *Manager) Init(ctx context.Context, path string) error {
	branch := m.defaultBranch(ctx)

	attempts := []initAttempt{
		{args: []string{"init", "--initial-branch", branch}},
		{args: []string{"init"}},
	}

	var lastErr error
	for _, attempt := range attempts {
		_, err := m.runner.Run(ctx, "git", attempt.args, run.Options{Dir: path, Silent: true})
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// Commit stages everything and creates the initial commit. Calling it on
// a repository that already has the commit is left to git's own
// semantics.
func (m *Manager) Commit(ctx context.Context, path string) error {
	if _, err := m.runner.Run(ctx, "git", []string{"add", "-A"}, run.Options{Dir: path, Silent: true}); err != nil {
		return err
	}
	_, err := m.runner.Run(ctx, "git", []string{"commit", "-m", initialCommitMessage}, run.Options{Dir: path, Silent: true})
	return err
}

// defaultBranch reads git's configured init branch, empty config falls
// back to "main".
func (m *Manager) defaultBranch(ctx context.Context) string {
	out, err := m.runner.Run(ctx, "git", []string{"config", "--get", "init.defaultBranch"}, run.Options{Silent: true})
	if err != nil {
		return fallbackBranch
	}
	branch := strings.TrimSpace(out)
	if branch == "" {
		return fallbackBranch
	}
	return branch
}

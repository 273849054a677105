// Package deploy runs the project's deploy command and turns its output
// into a stable deployment URL.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/hatchdev/hatch/internal/run"
	"github.com/hatchdev/hatch/internal/session"
)

// ErrMissingAccount means deploy was requested without an account bound
// in the session. The orchestrator selects the account before running a
// deploy, so hitting this is a programming error upstream.
var ErrMissingAccount = errors.New("deploy requested but no account selected")

// NoDeploymentURLError means the deploy command finished without printing
// a recognizable deployment URL. The run does not count as successful
// without one, regardless of the command's exit code.
type NoDeploymentURLError struct {
	Output string
}

func (e *NoDeploymentURLError) Error() string {
	return "deploy output contained no deployment URL"
}

// Runner invokes the framework deploy command for a session.
type Runner struct {
	runner run.Runner
}

// NewRunner creates a deploy runner over the given process runner.
func NewRunner(runner run.Runner) *Runner {
	return &Runner{runner: runner}
}

// Run executes the deploy command inside the project directory with the
// selected account injected via the environment, then extracts and
// canonicalizes the deployment URL into the session. It is a no-op when
// deploy was declined.
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	if !s.Deploy.Bool() {
		return nil
	}
	if s.Account == nil {
		return ErrMissingAccount
	}

	pm := "npm"
	if s.Framework != nil && s.Framework.PackageManager != "" {
		pm = s.Framework.PackageManager
	}

	out, err := r.runner.Run(ctx, pm, []string{"run", s.DeployCommand()}, run.Options{
		Dir:    s.Project.Path,
		Env:    []string{fmt.Sprintf("CLOUDFLARE_ACCOUNT_ID=%s", s.Account.ID)},
		Silent: true,
	})
	if err != nil {
		return fmt.Errorf("deploy command failed: %w", err)
	}

	raw := ExtractDeploymentURL(out)
	if raw == "" {
		return &NoDeploymentURLError{Output: out}
	}

	s.DeployedURL = CanonicalizeURL(raw)
	return nil
}

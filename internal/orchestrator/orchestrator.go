// Package orchestrator sequences the bootstrap pipeline: path resolution,
// deploy intent, account selection, scaffolding, version control, deploy,
// and the post-deploy summary. Step order is fixed. The orchestrator is
// the single place that decides whether a step's failure is fatal or a
// degradation the pipeline continues past.
package orchestrator

import (
	"context"
	"fmt"
	"os"

	"github.com/hatchdev/hatch/internal/account"
	"github.com/hatchdev/hatch/internal/browser"
	"github.com/hatchdev/hatch/internal/cli"
	"github.com/hatchdev/hatch/internal/cloudflare"
	"github.com/hatchdev/hatch/internal/deploy"
	"github.com/hatchdev/hatch/internal/framework"
	"github.com/hatchdev/hatch/internal/health"
	"github.com/hatchdev/hatch/internal/project"
	"github.com/hatchdev/hatch/internal/render"
	"github.com/hatchdev/hatch/internal/run"
	"github.com/hatchdev/hatch/internal/session"
	"github.com/hatchdev/hatch/internal/vcs"
)

// Orchestrator wires the pipeline steps together. Collaborators are
// function fields so automation and tests can substitute them without
// touching the step logic.
type Orchestrator struct {
	Runner   run.Runner
	Prompter cli.Prompter
	Renderer *render.Renderer

	// ResolvePath resolves the project name to its on-disk location.
	ResolvePath func(name string) (session.Project, error)

	// Poll waits for the deployed URL to answer; gates browser-open.
	Poll func(ctx context.Context, url string) bool

	// Login authenticates the operator; failure short-circuits deploy.
	Login func(ctx context.Context) (bool, error)

	// ListAccounts fetches the operator's account mapping, once.
	ListAccounts func(ctx context.Context) (map[string]string, error)

	// Scaffold creates the project skeleton inside the resolved path.
	Scaffold func(ctx context.Context, s *session.Session) error

	// OpenURL opens the deployed URL in a browser, best effort.
	OpenURL func(url string) error

	// RecordDeployment persists a history entry, advisory only.
	RecordDeployment func(s *session.Session) error
}

// New builds an orchestrator with the production collaborators.
func New(runner run.Runner, prompter cli.Prompter) *Orchestrator {
	return &Orchestrator{
		Runner:      runner,
		Prompter:    prompter,
		Renderer:    render.New(),
		Poll:        health.NewPoller().Poll,
		ResolvePath: project.Resolve,
		Login: func(ctx context.Context) (bool, error) {
			return cloudflare.EnsureLogin(ctx, runner)
		},
		ListAccounts: func(ctx context.Context) (map[string]string, error) {
			if token := cloudflare.ResolveAPIToken(); token != "" {
				client, err := cloudflare.NewClient(token, runner)
				if err != nil {
					return nil, err
				}
				return client.ListAccounts(ctx)
			}
			return cloudflare.ListAccountsFromWrangler(ctx, runner)
		},
		Scaffold: defaultScaffold,
		OpenURL:  browser.Open,
	}
}

// Run executes the pipeline for projectName against the session's
// pre-resolved flags.
func (o *Orchestrator) Run(ctx context.Context, projectName string, s *session.Session) error {
	proj, err := o.ResolvePath(projectName)
	if err != nil {
		return err
	}
	s.Project = proj

	if err := o.decideDeploy(ctx, s); err != nil {
		return err
	}

	if s.Deploy.Bool() {
		if err := o.bindAccount(ctx, s); err != nil {
			return err
		}
	}

	if err := o.Scaffold(ctx, s); err != nil {
		return fmt.Errorf("scaffolding failed: %w", err)
	}

	if desc, err := framework.Detect(s.Project.Path); err == nil {
		s.Framework = desc
	}

	o.setupVersionControl(ctx, s)

	dr := deploy.NewRunner(o.Runner)
	if err := dr.Run(ctx, s); err != nil {
		return err
	}

	o.Renderer.Summary(s)

	if s.DeployedURL != "" {
		if o.RecordDeployment != nil {
			if err := o.RecordDeployment(s); err != nil {
				o.Renderer.Advisory(fmt.Sprintf("could not record deployment history: %v", err))
			}
		}

		reachable := o.Poll(ctx, s.DeployedURL)
		if reachable && s.Open {
			if err := o.OpenURL(s.DeployedURL); err != nil {
				o.Renderer.Advisory(fmt.Sprintf("could not open browser: %v", err))
			}
		}
	}

	o.Renderer.Closing()
	return nil
}

// decideDeploy resolves the deploy intent, prompting when no flag
// decided it.
func (o *Orchestrator) decideDeploy(ctx context.Context, s *session.Session) error {
	if s.Deploy.Decided() {
		return nil
	}
	answer, err := o.Prompter.Confirm("Do you want to deploy your application?", true)
	if err != nil {
		return err
	}
	s.ResolveDeploy(answer)
	return nil
}

// bindAccount authenticates and selects the account the deploy runs
// against. A login failure aborts the pipeline: the operator asked to
// deploy and there is no account to deploy with.
func (o *Orchestrator) bindAccount(ctx context.Context, s *session.Session) error {
	ok, err := o.Login(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("login is required to deploy")
	}

	accounts, err := o.ListAccounts(ctx)
	if err != nil {
		return err
	}

	if preset := cloudflare.ResolveAccountID(); preset != "" {
		for name, id := range accounts {
			if id == preset {
				s.Account = &session.Account{ID: id, Name: name}
				break
			}
		}
	}

	if s.Account == nil {
		acc, err := account.Choose(accounts, o.Prompter)
		if err != nil {
			return err
		}
		s.Account = &acc
	}

	o.Renderer.Step(fmt.Sprintf("Using account %s", s.Account.Name))
	return nil
}

// setupVersionControl runs the git state machine. Nothing in here is
// fatal: a missing or failing git degrades to no version control.
func (o *Orchestrator) setupVersionControl(ctx context.Context, s *session.Session) {
	mgr := vcs.NewManager(o.Runner)

	if !mgr.ToolAvailable(ctx) {
		if s.Git == session.Yes {
			o.Renderer.Advisory("git is not installed, continuing without version control")
			s.DisableGit()
		}
		return
	}

	if mgr.InsideRepo(ctx, s.Project.Path) {
		// Never re-initialize an existing repository.
		return
	}

	if !s.Git.Decided() {
		answer, err := o.Prompter.Confirm("Use git for version control?", true)
		if err != nil {
			return
		}
		s.ResolveGit(answer)
	}

	if s.Git != session.Yes {
		return
	}

	if err := mgr.Init(ctx, s.Project.Path); err != nil {
		o.Renderer.Advisory(fmt.Sprintf("git init failed: %v", err))
		return
	}

	if err := mgr.Commit(ctx, s.Project.Path); err != nil {
		o.Renderer.Advisory(fmt.Sprintf("initial commit failed: %v", err))
	}
}

// defaultScaffold creates the project directory. Framework-specific
// generators run outside this core and fill it in.
func defaultScaffold(ctx context.Context, s *session.Session) error {
	return os.MkdirAll(s.Project.Path, 0o755)
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hatchdev/hatch/internal/cli"
	"github.com/hatchdev/hatch/internal/history"
	"github.com/hatchdev/hatch/internal/orchestrator"
	"github.com/hatchdev/hatch/internal/run"
	"github.com/hatchdev/hatch/internal/session"
)

var (
	newDeploy bool
	newGit    bool
	newOpen   bool
)

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new project and optionally deploy it",
	Long: `Create a new project directory, set up version control, deploy the
application, and open it in your browser.

Each of --deploy and --git is tri-state: leave it off to be asked
interactively, or pass --deploy/--deploy=false to decide up front.

Examples:
  hatch new my-site
  hatch new my-site --deploy --git --open
  hatch new my-site --deploy=false`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().BoolVar(&newDeploy, "deploy", false, "deploy the application after creating it")
	newCmd.Flags().BoolVar(&newGit, "git", false, "initialize a git repository")
	newCmd.Flags().BoolVar(&newOpen, "open", false, "open the deployed application in the browser")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	s := &session.Session{Open: newOpen}

	// Flags left off the command line stay undecided so the pipeline
	// can ask. cobra has no tri-state bool, Changed tells them apart.
	if cmd.Flags().Changed("deploy") {
		s.Deploy = session.FromBool(newDeploy)
	}
	if cmd.Flags().Changed("git") {
		s.Git = session.FromBool(newGit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	o := orchestrator.New(run.NewExecRunner(), cli.NewStdinPrompter())
	o.RecordDeployment = recordDeployment

	return o.Run(ctx, args[0], s)
}

// recordDeployment appends the deploy result to the local history store.
func recordDeployment(s *session.Session) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entry := history.Entry{
		Project: s.Project.Name,
		URL:     s.DeployedURL,
	}
	if s.Account != nil {
		entry.AccountID = s.Account.ID
		entry.AccountName = s.Account.Name
	}

	if err := store.Record(entry); err != nil {
		return fmt.Errorf("history record failed: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// DependencyStatus represents the status of a CLI tool.
type DependencyStatus struct {
	Name      string
	Installed bool
	Version   string
	Required  bool
	Message   string
}

// DependencyChecker handles detection of the external tools the
// bootstrap pipeline may invoke.
type DependencyChecker struct{}

// NewDependencyChecker creates a new dependency checker.
func NewDependencyChecker() *DependencyChecker {
	return &DependencyChecker{}
}

// CheckAll checks every tool the pipeline can use.
func (d *DependencyChecker) CheckAll() []DependencyStatus {
	return []DependencyStatus{
		d.CheckGit(),
		d.CheckNode(),
	}
}

// CheckGit checks if git is installed. Git is optional: the pipeline
// degrades to no version control when it is missing.
func (d *DependencyChecker) CheckGit() DependencyStatus {
	status := DependencyStatus{
		Name:     "git",
		Required: false,
	}

	path, err := exec.LookPath("git")
	if err != nil {
		status.Message = "git is not installed (version control will be skipped)"
		return status
	}

	status.Installed = true

	cmd := exec.CommandContext(context.Background(), path, "--version")
	output, err := cmd.Output()
	if err == nil {
		status.Version = strings.TrimSpace(string(output))
		if re := regexp.MustCompile(`\d+\.\d+\.\d+`); re.Match(output) {
			status.Version = re.FindString(string(output))
		}
	}

	return status
}

// CheckNode checks if node is installed.
func (d *DependencyChecker) CheckNode() DependencyStatus {
	status := DependencyStatus{
		Name:     "node",
		Required: true,
	}

	path, err := exec.LookPath("node")
	if err != nil {
		status.Message = "node is not installed"
		return status
	}

	status.Installed = true

	cmd := exec.CommandContext(context.Background(), path, "--version")
	output, err := cmd.Output()
	if err == nil {
		status.Version = strings.TrimSpace(string(output))
	}

	return status
}

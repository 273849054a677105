// Package run wraps subprocess execution behind a narrow contract so the
// pipeline steps can be exercised without spawning real processes.
package run

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
)

// Options controls a single subprocess invocation.
type Options struct {
	Dir    string   // working directory, empty = inherit
	Env    []string // extra KEY=value entries appended to the environment
	Silent bool     // capture output without mirroring it to the terminal
}

// Runner executes an external command and returns its combined stdout.
// A non-zero exit surfaces as a non-nil error.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (string, error)
	LookPath(name string) bool
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args and returns captured stdout.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if viper.GetBool("debug") {
		fmt.Printf("[run] %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()

	if !opts.Silent && stdout.Len() > 0 {
		fmt.Print(stdout.String())
	}

	if err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		return stdout.String(), fmt.Errorf("%s command failed: %w, stderr: %s", name, err, stderrStr)
	}

	return stdout.String(), nil
}

// LookPath reports whether name resolves to an executable on PATH.
func (r *ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

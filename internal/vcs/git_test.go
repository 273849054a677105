package vcs

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hatchdev/hatch/internal/run"
)

// scriptedRunner maps a command line to a canned result.
type scriptedRunner struct {
	results map[string]scriptedResult
	calls   []string
}

type scriptedResult struct {
	out string
	err error
}

func (s *scriptedRunner) Run(ctx context.Context, name string, args []string, opts run.Options) (string, error) {
	key := name + " " + strings.Join(args, " ")
	s.calls = append(s.calls, key)
	if res, ok := s.results[key]; ok {
		return res.out, res.err
	}
	return "", nil
}

func (s *scriptedRunner) LookPath(name string) bool { return true }

func (s *scriptedRunner) called(key string) int {
	n := 0
	for _, c := range s.calls {
		if c == key {
			n++
		}
	}
	return n
}

func TestToolAvailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "git works", err: nil, want: true},
		{name: "git missing", err: fmt.Errorf("git command failed: exec: not found"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := &scriptedRunner{results: map[string]scriptedResult{
				"git --version": {out: "git version 2.44.0", err: tt.err},
			}}

			got := NewManager(sr).ToolAvailable(context.Background())
			if got != tt.want {
				t.Errorf("ToolAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsideRepo(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want bool
	}{
		{
			name: "clean repo",
			out:  "On branch main\nnothing to commit, working tree clean\n",
			want: true,
		},
		{
			name: "not a repository marker",
			out:  "fatal: not a git repository (or any of the parent directories): .git\n",
			want: false,
		},
		{
			name: "status query fails",
			err:  fmt.Errorf("git command failed: exit status 128"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := &scriptedRunner{results: map[string]scriptedResult{
				"git status": {out: tt.out, err: tt.err},
			}}

			got := NewManager(sr).InsideRepo(context.Background(), "/tmp/proj")
			if got != tt.want {
				t.Errorf("InsideRepo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_UsesConfiguredBranch(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{
		"git config --get init.defaultBranch": {out: "trunk\n"},
	}}

	if err := NewManager(sr).Init(context.Background(), "/tmp/proj"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if sr.called("git init --initial-branch trunk") != 1 {
		t.Errorf("Init() calls = %v, want init with trunk branch", sr.calls)
	}
	if sr.called("git init") != 0 {
		t.Errorf("Init() ran plain init despite branch init succeeding: %v", sr.calls)
	}
}

func TestInit_EmptyConfigFallsBackToMain(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{
		"git config --get init.defaultBranch": {out: "\n"},
	}}

	if err := NewManager(sr).Init(context.Background(), "/tmp/proj"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if sr.called("git init --initial-branch main") != 1 {
		t.Errorf("Init() calls = %v, want init with main branch", sr.calls)
	}
}

func TestInit_BranchFlagUnsupportedFallsBackToPlainInit(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{
		"git config --get init.defaultBranch": {err: fmt.Errorf("git command failed: exit status 1")},
		"git init --initial-branch main":      {err: fmt.Errorf("git command failed: unknown option")},
	}}

	if err := NewManager(sr).Init(context.Background(), "/tmp/proj"); err != nil {
		t.Fatalf("Init() error = %v, fallback init must not raise", err)
	}

	if sr.called("git init") != 1 {
		t.Errorf("Init() calls = %v, want plain init fallback", sr.calls)
	}
}

func TestInit_BothAttemptsFailPropagates(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{
		"git config --get init.defaultBranch": {out: "main"},
		"git init --initial-branch main":      {err: fmt.Errorf("git command failed: disk full")},
		"git init":                            {err: fmt.Errorf("git command failed: disk full")},
	}}

	if err := NewManager(sr).Init(context.Background(), "/tmp/proj"); err == nil {
		t.Error("Init() error = nil, want failure when both attempts fail")
	}
}

func TestCommit_StagesThenCommits(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{}}

	if err := NewManager(sr).Commit(context.Background(), "/tmp/proj"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if len(sr.calls) != 2 {
		t.Fatalf("Commit() ran %d commands, want 2: %v", len(sr.calls), sr.calls)
	}
	if sr.calls[0] != "git add -A" {
		t.Errorf("first command = %q, want git add -A", sr.calls[0])
	}
	if !strings.HasPrefix(sr.calls[1], "git commit -m ") {
		t.Errorf("second command = %q, want git commit", sr.calls[1])
	}
}

func TestCommit_AddFailureStopsBeforeCommit(t *testing.T) {
	sr := &scriptedRunner{results: map[string]scriptedResult{
		"git add -A": {err: fmt.Errorf("git command failed: exit status 1")},
	}}

	if err := NewManager(sr).Commit(context.Background(), "/tmp/proj"); err == nil {
		t.Error("Commit() error = nil, want add failure")
	}
	for _, c := range sr.calls {
		if strings.HasPrefix(c, "git commit") {
			t.Errorf("Commit() ran commit after failed add: %v", sr.calls)
		}
	}
}

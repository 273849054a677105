package session

import (
	"testing"

	"github.com/hatchdev/hatch/internal/framework"
)

func TestTriState(t *testing.T) {
	var ts TriState
	if ts.Decided() {
		t.Error("zero TriState reports decided")
	}
	if ts.Bool() {
		t.Error("zero TriState reports true")
	}

	if FromBool(true) != Yes || FromBool(false) != No {
		t.Error("FromBool mapping wrong")
	}
}

func TestResolveOnce(t *testing.T) {
	s := &Session{}

	s.ResolveDeploy(true)
	if s.Deploy != Yes {
		t.Errorf("Deploy = %v, want Yes", s.Deploy)
	}

	// Already decided: a second resolution is a no-op.
	s.ResolveDeploy(false)
	if s.Deploy != Yes {
		t.Errorf("Deploy changed after second resolve, got %v", s.Deploy)
	}

	s.ResolveGit(false)
	s.ResolveGit(true)
	if s.Git != No {
		t.Errorf("Git = %v, want No", s.Git)
	}
}

func TestDisableGitOverride(t *testing.T) {
	s := &Session{}
	s.ResolveGit(true)

	s.DisableGit()
	if s.Git != No {
		t.Errorf("Git = %v after DisableGit, want No", s.Git)
	}
}

func TestCommandDefaults(t *testing.T) {
	s := &Session{}
	if got := s.DeployCommand(); got != "deploy" {
		t.Errorf("DeployCommand() = %q, want deploy", got)
	}
	if got := s.DevCommand(); got != "start" {
		t.Errorf("DevCommand() = %q, want start", got)
	}

	s.Framework = &framework.Descriptor{DeployCommand: "publish", DevCommand: "dev"}
	if got := s.DeployCommand(); got != "publish" {
		t.Errorf("DeployCommand() = %q, want publish", got)
	}
	if got := s.DevCommand(); got != "dev" {
		t.Errorf("DevCommand() = %q, want dev", got)
	}
}

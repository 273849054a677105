// Package session holds the shared state threaded through the bootstrap
// pipeline. Fields follow a monotonic fill-in discipline: each one is set
// by exactly one step and never cleared afterwards. The single exception
// is the git intent, which the version-control step may downgrade when the
// git binary is missing.
package session

import "github.com/hatchdev/hatch/internal/framework"

// TriState models a boolean flag that may not have been decided yet.
// A flag starts Unset unless passed on the command line and is resolved
// to Yes or No exactly once, either from the flag or from a prompt.
type TriState int

const (
	Unset TriState = iota
	Yes
	No
)

// Bool reports the decided value. Callers must only use it after the
// flag has been resolved.
func (t TriState) Bool() bool {
	return t == Yes
}

// Decided reports whether the flag has been resolved.
func (t TriState) Decided() bool {
	return t != Unset
}

// FromBool converts a decided boolean into a TriState.
func FromBool(b bool) TriState {
	if b {
		return Yes
	}
	return No
}

// Project identifies the bootstrapped project on disk.
type Project struct {
	Name string
	Path string // absolute
}

// Account is the cloud account bound to the deploy step.
type Account struct {
	ID   string
	Name string
}

// Session is the mutable pipeline context. It is owned by the
// orchestrator and passed by reference to every step.
type Session struct {
	Project Project

	Deploy TriState
	Git    TriState
	Open   bool

	Account   *Account
	Framework *framework.Descriptor

	DeployedURL string
}

// ResolveDeploy records the deploy decision if it has not been made yet.
func (s *Session) ResolveDeploy(v bool) {
	if !s.Deploy.Decided() {
		s.Deploy = FromBool(v)
	}
}

// ResolveGit records the git decision if it has not been made yet.
func (s *Session) ResolveGit(v bool) {
	if !s.Git.Decided() {
		s.Git = FromBool(v)
	}
}

// DisableGit overrides the git intent to No. This is the one allowed
// post-decision override, used when the git binary is unavailable.
func (s *Session) DisableGit() {
	s.Git = No
}

// DeployCommand returns the framework's deploy script name, defaulting
// to "deploy" when no descriptor was detected.
func (s *Session) DeployCommand() string {
	if s.Framework != nil && s.Framework.DeployCommand != "" {
		return s.Framework.DeployCommand
	}
	return "deploy"
}

// DevCommand returns the framework's dev script name, defaulting to
// "start".
func (s *Session) DevCommand() string {
	if s.Framework != nil && s.Framework.DevCommand != "" {
		return s.Framework.DevCommand
	}
	return "start"
}

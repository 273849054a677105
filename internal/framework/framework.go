// Package framework detects the target project's framework descriptor:
// the deploy and dev script names and the package manager that runs them.
package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default script names used when the project supplies none.
const (
	DefaultDeployCommand = "deploy"
	DefaultDevCommand    = "start"
)

// Descriptor describes how to run the project's lifecycle scripts.
type Descriptor struct {
	Name           string `yaml:"name"`
	DeployCommand  string `yaml:"deployCommand"`
	DevCommand     string `yaml:"devCommand"`
	PackageManager string `yaml:"packageManager"`
}

// manifestName is the optional per-project override file.
const manifestName = "hatch.yml"

type packageJSON struct {
	Scripts map[string]string `json:"scripts"`
}

// Detect builds a descriptor for the project at dir. A hatch.yml manifest
// wins; otherwise script names come from package.json scripts and the
// package manager from lockfiles. Missing pieces fall back to defaults.
func Detect(dir string) (*Descriptor, error) {
	desc := &Descriptor{
		DeployCommand:  DefaultDeployCommand,
		DevCommand:     DefaultDevCommand,
		PackageManager: detectPackageManager(dir),
	}

	manifestPath := filepath.Join(dir, manifestName)
	if data, err := os.ReadFile(manifestPath); err == nil {
		var m Descriptor
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", manifestName, err)
		}
		if m.Name != "" {
			desc.Name = m.Name
		}
		if m.DeployCommand != "" {
			desc.DeployCommand = m.DeployCommand
		}
		if m.DevCommand != "" {
			desc.DevCommand = m.DevCommand
		}
		if m.PackageManager != "" {
			desc.PackageManager = m.PackageManager
		}
		return desc, nil
	}

	pkgPath := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		// No manifest and no package.json: defaults apply.
		return desc, nil
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	if _, ok := pkg.Scripts["deploy"]; ok {
		desc.DeployCommand = "deploy"
	}
	if _, ok := pkg.Scripts["dev"]; ok {
		desc.DevCommand = "dev"
	} else if _, ok := pkg.Scripts["start"]; ok {
		desc.DevCommand = "start"
	}

	return desc, nil
}

// detectPackageManager picks the package manager from lockfiles.
func detectPackageManager(dir string) string {
	if fileExists(dir, "pnpm-lock.yaml") || fileExists(dir, "pnpm-workspace.yaml") {
		return "pnpm"
	}
	if fileExists(dir, "yarn.lock") {
		return "yarn"
	}
	if fileExists(dir, "bun.lockb") || fileExists(dir, "bun.lock") {
		return "bun"
	}
	return "npm"
}

func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

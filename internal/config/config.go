package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/vstamp/internal/models"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked up in the working directory when no --config is given
const DefaultFileName = "vstamp.toml"

// ErrNoVersionNumber is returned by Validate when version.number is empty
var ErrNoVersionNumber = errors.New("version.number must be set")

type Config struct {
	Version VersionConfig `toml:"version"`
	Git     GitConfig     `toml:"git"`
	Outputs OutputsConfig `toml:"outputs"`

	// Resolved git executable (not serialized, empty when git is unavailable)
	gitPath string
}

type VersionConfig struct {
	Number string `toml:"number"`
}

type GitConfig struct {
	// Path overrides the git executable; empty means look it up on PATH
	Path string `toml:"path"`
	// RepoDir is the checkout git runs in and outputs resolve against
	RepoDir string `toml:"repo_dir"`
}

type OutputsConfig struct {
	TeX    string `toml:"tex"`
	R      string `toml:"r"`
	Header string `toml:"header"`
}

func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			RepoDir: ".",
		},
		Outputs: OutputsConfig{
			TeX:    "Documentation/UserManual/Version.tex",
			R:      "R-libraries/Version.R",
			Header: "CASAL2/source/Version.h",
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings generation cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Version.Number) == "" {
		return ErrNoVersionNumber
	}
	outputs := map[string]string{
		"outputs.tex":    c.Outputs.TeX,
		"outputs.r":      c.Outputs.R,
		"outputs.header": c.Outputs.Header,
	}
	for _, key := range []string{"outputs.tex", "outputs.r", "outputs.header"} {
		if strings.TrimSpace(outputs[key]) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// ResolveGit finds the git executable: the configured path when it is runnable,
// otherwise git on PATH. Leaves GitPath empty when neither exists.
func (c *Config) ResolveGit() string {
	c.gitPath = ""
	if c.Git.Path != "" {
		if p, err := exec.LookPath(expandTilde(c.Git.Path)); err == nil {
			c.gitPath = p
		}
		return c.gitPath
	}
	if p, err := exec.LookPath("git"); err == nil {
		c.gitPath = p
	}
	return c.gitPath
}

// SetGitPath records an already resolved git executable
func (c *Config) SetGitPath(path string) {
	c.gitPath = path
}

// GitPath returns the resolved git executable (empty if git was not found)
func (c *Config) GitPath() string {
	return c.gitPath
}

// RepoPath returns the repository directory with ~ expanded
func (c *Config) RepoPath() string {
	if c.Git.RepoDir == "" {
		return "."
	}
	return expandTilde(c.Git.RepoDir)
}

// OutputPath returns where the given artifact is written.
// Relative paths resolve against the repository directory.
func (c *Config) OutputPath(kind models.ArtifactKind) string {
	var p string
	switch kind {
	case models.ArtifactTeX:
		p = c.Outputs.TeX
	case models.ArtifactR:
		p = c.Outputs.R
	case models.ArtifactHeader:
		p = c.Outputs.Header
	default:
		return ""
	}

	p = expandTilde(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.RepoPath(), p)
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// LogFormat prints the full hash, short hash and committer date on three lines
const LogFormat = "--pretty=format:%H%n%h%n%ci"

// IsRepo checks if the path is a git repository
func IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRoot walks up from start to the enclosing repository root
func FindRoot(start string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if IsRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// Client runs the git executable in a repository
type Client struct {
	// Path to the git executable
	Path string
	// Dir is the working directory git runs in
	Dir string
}

// NewClient creates a Client for the given executable and repository
func NewClient(path, dir string) *Client {
	return &Client{Path: path, Dir: dir}
}

// LatestCommit returns git's raw log output for the most recent commit,
// formatted with LogFormat. The output is returned as-is.
func (c *Client) LatestCommit() (string, error) {
	args := []string{"--no-pager", "log", "-n", "1", LogFormat}
	cmd := exec.Command(c.Path, args...)
	cmd.Dir = c.Dir

	log.Debug().Str("git", c.Path).Str("dir", c.Dir).Strs("args", args).Msg("running git")

	output, err := cmd.Output()
	if err != nil {
		outputStr := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outputStr = strings.TrimSpace(string(exitErr.Stderr))
		}
		if outputStr != "" {
			return "", &GitError{Command: "log", Output: outputStr}
		}
		return "", &GitError{Command: "log", Output: err.Error()}
	}

	return string(output), nil
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// Package stamp turns the latest git commit into the generated version files
// compiled into the model, its R libraries and its user manual.
package stamp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/wahlandcase/vstamp/internal/config"
	"github.com/wahlandcase/vstamp/internal/models"
)

// CommitSource returns git's raw three line log record for the latest commit
type CommitSource interface {
	LatestCommit() (string, error)
}

// Reporter receives console progress
type Reporter interface {
	Step(msg string)
	Warn(msg string)
	Written(a models.Artifact)
	Content(title, body string)
}

// Generator writes the version files for one configuration
type Generator struct {
	cfg      *config.Config
	source   CommitSource
	reporter Reporter
}

// NewGenerator creates a Generator
func NewGenerator(cfg *config.Config, source CommitSource, reporter Reporter) *Generator {
	return &Generator{cfg: cfg, source: source, reporter: reporter}
}

// Generate fetches the latest commit once and writes all three version files.
// When git is unavailable it warns and returns nil without writing anything.
// Nothing is written unless the commit record parses.
func (g *Generator) Generate(verbose bool) error {
	if verbose {
		g.reporter.Step("Creating version information from git")
	}

	artifacts, ok, err := g.render()
	if err != nil || !ok {
		return err
	}

	for _, a := range artifacts {
		if err := writeFile(a.Path, a.Content); err != nil {
			return err
		}
		log.Debug().Str("path", a.Path).Str("kind", string(a.Kind)).Msg("wrote version file")
		if verbose {
			g.reporter.Written(a)
		}
	}

	if verbose {
		header := artifacts[len(artifacts)-1]
		g.reporter.Content(filepath.Base(header.Path), header.Content)
	}

	return nil
}

// Render fetches the latest commit and renders every artifact without writing.
// The slice is empty when git is unavailable.
func (g *Generator) Render() ([]models.Artifact, error) {
	artifacts, _, err := g.render()
	return artifacts, err
}

func (g *Generator) render() ([]models.Artifact, bool, error) {
	if g.cfg.GitPath() == "" {
		g.reporter.Warn("No git executable was found; cannot create version files")
		return nil, false, nil
	}

	raw, err := g.source.LatestCommit()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read latest commit: %w", err)
	}

	rec, err := Parse(raw)
	if err != nil {
		return nil, false, err
	}
	log.Debug().
		Str("hash", rec.FullHash).
		Time("committed", rec.CommitTime).
		Time("utc", rec.UTC()).
		Msg("parsed latest commit")

	s := NewStamp(g.cfg.Version.Number, rec)

	artifacts := make([]models.Artifact, 0, len(models.ArtifactKinds))
	for _, kind := range models.ArtifactKinds {
		artifacts = append(artifacts, models.NewArtifact(kind, g.cfg.OutputPath(kind), Render(kind, s)))
	}

	return artifacts, true, nil
}

// writeFile truncates path and writes content, closing the file on every path
func writeFile(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/vstamp/internal/config"
	"github.com/wahlandcase/vstamp/internal/git"
	"github.com/wahlandcase/vstamp/internal/logging"
	"github.com/wahlandcase/vstamp/internal/stamp"
	"github.com/wahlandcase/vstamp/internal/ui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type options struct {
	configPath    string
	verbose       bool
	logLevel      string
	noColor       bool
	versionNumber string
	gitPath       string
	repoDir       string
	force         bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "vstamp",
		Short:         "Generate version files from the latest git commit",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(stderr, opts.logLevel, opts.noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, stdout)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "Path to the vstamp TOML config")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Echo progress and the generated header")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default $"+logging.EnvLevel+" or warn)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	addGenerateFlags(rootCmd, opts)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the LaTeX, R and C++ version files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, stdout)
		},
	}
	addGenerateFlags(generateCmd, opts)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the version files without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, stdout)
		},
	}
	addGenerateFlags(showCmd, opts)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, stdout)
		},
	}
	initCmd.Flags().StringVar(&opts.versionNumber, "version-number", "", "Release number to store in the config")
	initCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(generateCmd, showCmd, initCmd)
	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.versionNumber, "version-number", "", "Release number (overrides version.number)")
	cmd.Flags().StringVar(&opts.gitPath, "git", "", "Path to the git executable (overrides git.path)")
	cmd.Flags().StringVar(&opts.repoDir, "repo", "", "Repository directory (overrides git.repo_dir)")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.versionNumber != "" {
		cfg.Version.Number = opts.versionNumber
	}
	if opts.gitPath != "" {
		cfg.Git.Path = opts.gitPath
	}

	switch {
	case opts.repoDir != "":
		cfg.Git.RepoDir = opts.repoDir
	case cfg.Git.RepoDir == "" || cfg.Git.RepoDir == ".":
		if root, err := git.FindRoot("."); err == nil {
			cfg.Git.RepoDir = root
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if p := cfg.ResolveGit(); p != "" {
		log.Debug().Str("git", p).Msg("resolved git executable")
	}
	log.Debug().
		Str("version", cfg.Version.Number).
		Str("repo", cfg.RepoPath()).
		Msg("loaded config")

	return cfg, nil
}

func newGenerator(opts *options, cfg *config.Config, stdout io.Writer) *stamp.Generator {
	reporter := ui.NewReporter(stdout, opts.noColor)
	source := git.NewClient(cfg.GitPath(), cfg.RepoPath())
	return stamp.NewGenerator(cfg, source, reporter)
}

func runGenerate(opts *options, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	return newGenerator(opts, cfg, stdout).Generate(opts.verbose)
}

func runShow(opts *options, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	artifacts, err := newGenerator(opts, cfg, stdout).Render()
	if err != nil {
		return err
	}

	reporter := ui.NewReporter(stdout, opts.noColor)
	for _, a := range artifacts {
		reporter.Content(a.Path, a.Content)
	}
	return nil
}

func runInit(opts *options, stdout io.Writer) error {
	if _, err := os.Stat(opts.configPath); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.configPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Version.Number = opts.versionNumber
	if err := cfg.Save(opts.configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote %s\n", opts.configPath)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/git"
	"github.com/simeg/git-x-sub001/internal/log"
	"github.com/simeg/git-x-sub001/internal/output"
	"github.com/simeg/git-x-sub001/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	chdir   string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// errSyncFailed is returned after a report has already shown which
// branches failed. Execute exits 1 without printing it again.
var errSyncFailed = errors.New("one or more branches failed to sync")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "git-x",
	Short: "Keep local branches in step with their upstreams",
	Long: `git-x compares local branches with their upstream tracking branches and
brings the ones that fell behind up to date by rebasing or merging.

Branches with local-only commits are reported and left alone.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		if chdir != "" {
			dir, err := filepath.Abs(chdir)
			if err != nil {
				return fmt.Errorf("invalid -C directory: %w", err)
			}
			ctx = config.WithWorkDir(ctx, dir)
		}
		cmd.SetContext(ctx)

		// Skip git check for completion, help and config commands
		switch cmd.Name() {
		case "completion", "__complete", "help", "init", "show":
			return nil
		}

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(loadedCfg.UI)

	// Get working directory
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "git-x: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = config.WithResolver(ctx, config.NewResolver(&loadedCfg))
	ctx = config.WithWorkDir(ctx, workDir)

	// Logger until flags are parsed (stderr for diagnostics)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// Add output printer (stdout for primary data, downsampled for pipes)
	ctx = output.WithPrinter(ctx, output.ColorWriter(os.Stdout, os.Environ()))

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		cancel()
		if !errors.Is(err, errSyncFailed) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'git-x -h' for help")
		}
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "Run as if git-x was started in `dir`")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("chdir")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newUpstreamCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}

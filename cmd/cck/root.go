package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupHooks   = "hooks"
	GroupInspect = "inspect"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cck",
		Short: "Lifecycle hooks for Claude Code",
		Long: `cck implements Claude Code lifecycle hooks.

Hooks protect sensitive files from edits and inject project context
(settings, response language, MCP servers, skills) into sessions.
The remaining commands inspect what the hooks would do.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := log.New(os.Stderr, verbose || log.DebugFromEnv(), quiet)
			cmd.SetContext(log.WithLogger(ctx, logger))

			// Hooks never touch the terminal; querying its background
			// would race the host for stdin.
			if isHookCmd(cmd) || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			styles.Init(config.FromContext(ctx).UI.Theme)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output except warnings")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Hook commands
	cmd.AddCommand(newHookCmd())
	cmd.AddCommand(newSetupCmd())

	// Inspection commands
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newSkillsCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newPreviewCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func isHookCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "hook" {
			return true
		}
	}
	return false
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cck: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = config.WithWorkDir(ctx, workDir)
	// Replaced in PersistentPreRunE once flags are parsed.
	ctx = log.WithLogger(ctx, log.New(os.Stderr, log.DebugFromEnv(), false))

	// Primary output, downsampled to what stdout supports
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(os.Stdout, os.Environ()))

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			cancel()
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'cck -h' for help")
		cancel()
		os.Exit(1)
	}
}

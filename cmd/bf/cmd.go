package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	apppkg "github.com/kk-code-lab/bf/internal/app"
	"github.com/kk-code-lab/bf/internal/envconfig"
	"github.com/kk-code-lab/bf/internal/handoff"
	"github.com/kk-code-lab/bf/internal/logging"
	"github.com/kk-code-lab/bf/internal/shellsetup"
	"github.com/spf13/cobra"
)

// exitAborted is the status after Ctrl+C, so shell wrappers skip the cd.
const exitAborted = 130

var errAborted = errors.New("aborted")

var version = "dev"

var parentShellDetector = shellsetup.DetectParentShellName

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI builds the bf root command.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bf",
		Short: "Browse to a directory and hand it to your shell",
		Long: `bf lists the subdirectories of the current directory and lets you move
through the tree with the arrow keys. Enter appends the directory you are in
to the handoff file; the shell function printed by "bf --setup" then cd's
there.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runHandler,
	}

	flags := rootCmd.Flags()
	flags.StringP("dir", "d", "", "Start in this directory instead of the working directory")
	flags.String("handoff", "", "Append the chosen directory to this file (overrides BF_HANDOFF)")
	flags.StringP("setup", "s", "", "Print the shell integration function (optionally for SHELL)")
	flags.Lookup("setup").NoOptDefVal = "auto"
	flags.Bool("last", false, "Print the most recently chosen directory and exit")

	envs := envconfig.AsMap()
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	slices.Sort(names)
	docs := make([]envconfig.EnvVar, 0, len(names))
	for _, name := range names {
		docs = append(docs, envs[name])
	}
	appendEnvDocs(rootCmd, docs)

	return rootCmd
}

func handoffPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("handoff")
	if path == "" {
		path = envconfig.HandoffPath()
	}
	if path == "" {
		return "", errors.New("cannot locate the home directory; set BF_HANDOFF or --handoff")
	}
	return path, nil
}

func runHandler(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("setup") && len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	path, err := handoffPath(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("setup") {
		return setupHandler(cmd, args, path)
	}

	if last, _ := cmd.Flags().GetBool("last"); last {
		dir, err := handoff.Last(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	}

	return browseHandler(cmd, path)
}

func setupHandler(cmd *cobra.Command, args []string, path string) error {
	shell, _ := cmd.Flags().GetString("setup")
	if shell == "auto" {
		// "bf --setup fish" leaves the shell as a positional argument.
		shell = ""
		if len(args) > 0 {
			shell = args[0]
		}
	}
	return shellsetup.PrintSetup(cmd.OutOrStdout(), strings.TrimSpace(shell), shellsetup.Config{
		DetectParent: parentShellDetector,
		HandoffPath:  path,
	})
}

func browseHandler(cmd *cobra.Command, path string) error {
	logCloser, err := logging.Setup(envconfig.LogPath(), envconfig.LogLevel())
	if err != nil {
		return err
	}
	defer logCloser.Close()

	startDir, _ := cmd.Flags().GetString("dir")
	app, err := apppkg.New(apppkg.Options{
		StartDir:   startDir,
		HideHidden: envconfig.HideHidden(),
		Logger:     slog.Default(),
	})
	if err != nil {
		return err
	}
	defer app.Close()

	runErr := app.Run()
	// Give the terminal back before anything is printed.
	_ = app.Close()
	if runErr != nil {
		return runErr
	}

	dir, ok := app.Result()
	if !ok {
		return errAborted
	}
	if err := handoff.Append(path, dir); err != nil {
		return err
	}
	slog.Info("directory handed off", "path", dir, "file", path)
	return nil
}

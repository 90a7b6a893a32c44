package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"composedetect/internal/config"
	"composedetect/internal/contextinfo"
	"composedetect/internal/detector"
	"composedetect/internal/logger"
	"composedetect/internal/settings"
	"composedetect/internal/ui"
)

type rootFlags struct {
	settingsPath string
	file         string
	discover     bool
	key          string
	mode         string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	opts := logger.FromEnv()
	opts.Writer = errOut
	log := logger.WithRun(logger.New(opts))

	root := newRootCmd(&log)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		var readErr *detector.ReadError
		if errors.As(err, &readErr) {
			ui.Failure(errOut, readErr.Err)
		} else {
			fmt.Fprintln(errOut, err)
		}
		return 1
	}
	return 0
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "composedetect",
		Short:         "Report whether a devcontainer.json uses docker compose",
		Long:          "composedetect reads a devcontainer.json from stdin and prints true when it declares dockerComposeFile, false otherwise.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return detect(cmd, flags, log)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.settingsPath, "config", "", "path to a settings YAML (defaults to $"+config.EnvPrefix+"CONFIG)")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read the document from a file instead of stdin")
	cmd.Flags().BoolVar(&flags.discover, "discover", false, "read the devcontainer.json found in the current repository")
	cmd.PersistentFlags().StringVar(&flags.key, "key", "", "field name to look for (default from settings)")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "detection mode: text or key (default from settings)")
	cmd.MarkFlagsMutuallyExclusive("file", "discover")

	cmd.AddCommand(locateCmd(flags))
	cmd.AddCommand(configCmd(flags))
	cmd.AddCommand(doctorCmd(flags))

	return cmd
}

func settingsPath(flags *rootFlags) string {
	if flags.settingsPath != "" {
		return flags.settingsPath
	}
	return config.New().Get("CONFIG", "")
}

func loadSettings(flags *rootFlags) (settings.Settings, error) {
	s, err := settings.Load(settingsPath(flags))
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}
	if flags.key != "" {
		s.TargetKey = flags.key
	}
	if flags.mode != "" {
		mode, err := detector.ParseMode(flags.mode)
		if err != nil {
			return s, err
		}
		s.Mode = mode
	}
	return s, nil
}

func detect(cmd *cobra.Command, flags *rootFlags, log *logger.Logger) error {
	s, err := loadSettings(flags)
	if err != nil {
		return err
	}

	src, source, err := openInput(cmd, flags, s)
	if err != nil {
		return detector.Unreadable(err)
	}
	defer src.Close()
	log.Debug().Str("source", source).Msg("detecting")

	opts := s.DetectorOptions()
	opts.Logger = log
	found, err := detector.Detect(src, opts)
	if err != nil {
		return err
	}
	return ui.Result(cmd.OutOrStdout(), found)
}

// openInput picks the document source: --file, --discover, or stdin.
func openInput(cmd *cobra.Command, flags *rootFlags, s settings.Settings) (io.ReadCloser, string, error) {
	path := flags.file
	if flags.discover {
		info, err := contextinfo.Detect(s.DevcontainerPaths)
		if err != nil {
			return nil, "", err
		}
		if path, err = info.DevcontainerPath(); err != nil {
			return nil, "", err
		}
	}
	if path == "" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func locateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the devcontainer.json path of the current repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(flags)
			if err != nil {
				return err
			}
			info, err := contextinfo.Detect(s.DevcontainerPaths)
			if err != nil {
				return err
			}
			path, err := info.DevcontainerPath()
			if err != nil {
				return fmt.Errorf("%w under %s", err, info.RepoRoot)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect composedetect settings",
	}
	var defaults bool
	explain := &cobra.Command{
		Use:   "explain",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), settings.DefaultYAML())
				return nil
			}
			s, err := loadSettings(flags)
			if err != nil {
				return err
			}
			yamlStr, err := s.ToYAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), yamlStr)
			return nil
		},
	}
	explain.Flags().BoolVar(&defaults, "defaults", false, "print the built-in settings file instead of the effective settings")
	c.AddCommand(explain)
	return c
}

func doctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show where composedetect looks and what it would read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(flags)
			if err != nil {
				return err
			}
			info, err := contextinfo.Detect(s.DevcontainerPaths)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "composedetect doctor")
			fmt.Fprintln(out, "cwd:", info.Cwd)
			if info.InRepo {
				fmt.Fprintln(out, "repo root:", info.RepoRoot)
			} else {
				fmt.Fprintln(out, "repo root: none (using cwd)")
			}
			if info.Devcontainer != "" {
				fmt.Fprintln(out, "devcontainer:", info.Devcontainer)
			} else {
				fmt.Fprintln(out, "devcontainer: none")
			}
			if path := settingsPath(flags); path != "" {
				fmt.Fprintln(out, "settings:", path)
			} else {
				fmt.Fprintln(out, "settings: using embedded default")
			}
			fmt.Fprintf(out, "target key: %s (mode %s)\n", s.TargetKey, s.Mode)
			return nil
		},
	}
}

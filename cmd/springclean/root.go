package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/springclean/internal/version"
	"github.com/arthur-debert/springclean/pkg/config"
	"github.com/arthur-debert/springclean/pkg/errors"
	"github.com/arthur-debert/springclean/pkg/logging"
	"github.com/arthur-debert/springclean/pkg/paths"
	"github.com/arthur-debert/springclean/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "springclean",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDedupeCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// appEnv bundles the resolved configuration and paths for one command
// invocation.
type appEnv struct {
	cfg        *config.Config
	paths      paths.Paths
	layoutPath string
}

// newAppEnv resolves configuration and the layout document path. The
// path is taken from the command argument, then SPRINGCLEAN_LAYOUT,
// then layout.path in the config file.
func newAppEnv(layoutArg string) (*appEnv, error) {
	base, err := paths.New(layoutArg)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(base.ConfigFilePath())
	if err != nil {
		return nil, err
	}
	style.Configure(cfg.Output.Color)

	if base.LayoutPath() == "" && cfg.Layout.Path != "" {
		base, err = paths.New(cfg.Layout.Path)
		if err != nil {
			return nil, err
		}
	}

	return &appEnv{cfg: cfg, paths: base, layoutPath: base.LayoutPath()}, nil
}

// requireLayout errors when no layout document was specified anywhere.
func (a *appEnv) requireLayout() error {
	if a.layoutPath == "" {
		return errors.New(errors.ErrInvalidInput,
			"no layout document specified (pass a path, set SPRINGCLEAN_LAYOUT, or set layout.path in the config)")
	}
	return nil
}

// backupsDir returns the effective backup directory, or an empty
// string when backups are disabled.
func (a *appEnv) backupsDir() string {
	if !a.cfg.Backup.Enabled {
		return ""
	}
	if a.cfg.Backup.Dir != "" {
		return a.cfg.Backup.Dir
	}
	return a.paths.BackupsDir()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "springclean version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SPRINGCLEAN",
				Section: "1",
			}
			return doc.GenManTree(root, header, "/tmp")
		},
	}
}

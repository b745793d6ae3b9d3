package main

import (
	"os/exec"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/springclean/pkg/display"
	"github.com/arthur-debert/springclean/pkg/errors"
	"github.com/arthur-debert/springclean/pkg/layout"
	"github.com/arthur-debert/springclean/pkg/logging"
	"github.com/arthur-debert/springclean/pkg/repair"
	"github.com/arthur-debert/springclean/pkg/store"
)

func newDedupeCmd() *cobra.Command {
	var (
		format   string
		noBackup bool
		noNotify bool
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "dedupe [layout-file]",
		Short: MsgDedupeShort,
		Long:  MsgDedupeLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.dedupe")

			outFormat, err := display.ParseFormat(format)
			if err != nil {
				return err
			}

			var layoutArg string
			if len(args) == 1 {
				layoutArg = args[0]
			}
			env, err := newAppEnv(layoutArg)
			if err != nil {
				return err
			}
			if err := env.requireLayout(); err != nil {
				return err
			}

			fs := afero.NewOsFs()
			backupsDir := env.backupsDir()
			if noBackup {
				backupsDir = ""
			}
			st := store.New(fs, env.layoutPath, backupsDir)

			if err := st.Lock(); err != nil {
				return err
			}
			defer st.Unlock()

			var backupPath string
			result, err := repair.Run(repair.Options{
				Load: st.Load,
				Persist: func(doc *layout.Document) error {
					if backupsDir != "" {
						bp, err := st.Backup()
						if err != nil {
							return err
						}
						backupPath = bp
					}
					return st.Persist(doc)
				},
				Notify: notifyHook(env, noNotify),
				Reset:  resetHook(fs, st, reset),
			})
			if err != nil {
				return err
			}

			if result.Outcome == repair.OutcomeUnreadable {
				return errors.Wrap(result.LoadError, errors.ErrLayoutRead,
					"layout could not be loaded")
			}

			report := &display.Report{
				LayoutPath: env.layoutPath,
				Duplicates: result.Duplicates,
				Outcome:    string(result.Outcome),
				BackupPath: backupPath,
			}
			if err := report.Render(cmd.OutOrStdout(), outFormat); err != nil {
				return err
			}

			logger.Info().Str("outcome", string(result.Outcome)).Msg("Dedupe finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, yaml, or json")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the pre-persist backup")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Skip the post-persist notify command")
	cmd.Flags().BoolVar(&reset, "reset", false,
		"Delete the layout file when no duplicates are found (the host's original fallback)")
	return cmd
}

// notifyHook runs the configured notify command through the shell
// after a corrected layout is persisted.
func notifyHook(env *appEnv, noNotify bool) func() error {
	command := env.cfg.Notify.Command
	if noNotify || command == "" {
		return nil
	}
	return func() error {
		logger := logging.GetLogger("cmd.notify")
		logger.Info().Str("command", command).Msg("Running notify command")

		out, err := exec.Command("sh", "-c", command).CombinedOutput()
		if err != nil {
			return errors.Wrapf(err, errors.ErrNotify,
				"notify command failed: %s", string(out))
		}
		return nil
	}
}

// resetHook implements the fallback branch. By default it is a logged
// no-op; --reset opts into actually deleting the layout file.
func resetHook(fs afero.Fs, st *store.Store, reset bool) func() error {
	return func() error {
		logger := logging.GetLogger("cmd.reset")
		if !reset {
			logger.Info().Str("layout", st.Path()).
				Msg("Leaving layout untouched (pass --reset to delete it)")
			return nil
		}
		logger.Warn().Str("layout", st.Path()).Msg("Deleting layout file")
		return fs.Remove(st.Path())
	}
}

package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/springclean/pkg/dedupe"
	"github.com/arthur-debert/springclean/pkg/display"
	"github.com/arthur-debert/springclean/pkg/logging"
	"github.com/arthur-debert/springclean/pkg/store"
)

func newCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [layout-file]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

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

			doc, err := store.New(afero.NewOsFs(), env.layoutPath, "").Load()
			if err != nil {
				return err
			}

			report := &display.Report{
				LayoutPath: env.layoutPath,
				Duplicates: dedupe.Duplicates(doc),
			}
			if err := report.Render(cmd.OutOrStdout(), outFormat); err != nil {
				return err
			}

			if !report.Clean() {
				logger.Info().Int("identifiers", len(report.Duplicates)).
					Msg("Duplicates found")
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, yaml, or json")
	return cmd
}

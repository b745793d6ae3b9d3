package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/springclean/pkg/config"
	"github.com/arthur-debert/springclean/pkg/paths"
)

func newGenconfigCmd() *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long:  MsgGenconfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return nil
			}

			p, err := paths.New("")
			if err != nil {
				return err
			}
			cfg, err := config.Load(p.ConfigFilePath())
			if err != nil {
				return err
			}
			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false,
		"Print the effective configuration after all layers are applied")
	return cmd
}

package cli

import (
	"fmt"

	"flashdeck/internal/config"

	"github.com/spf13/cobra"
)

func newEnvCmd(app *App) *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if describe {
				usage, err := config.Usage()
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), usage)
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": app.cfg})
		},
	}

	cmd.Flags().BoolVar(&describe, "describe", false, "List the supported environment variables")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the local identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp := appCtx.Identities.Fingerprint(appCtx.Local)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

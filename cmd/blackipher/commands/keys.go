package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blackipher/internal/domain"
)

// keys [name]: print key material for name, or for every identity.
// Secret keys are printed on purpose; this is a teaching tool.
func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [name]",
		Short: "Print public and secret keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name domain.Username
			if len(args) == 1 {
				name = domain.Username(args[0])
			}
			return printKeys(cmd, name)
		},
	}
}

func printKeys(cmd *cobra.Command, name domain.Username) error {
	out := cmd.OutOrStdout()
	if name != "" {
		id, ok := appCtx.Directory.Find(name)
		if !ok {
			return fmt.Errorf("unknown identity %q", name)
		}
		renderKeys(out, appCtx.Identities.DescribeKeys(id))
		return nil
	}
	for i, id := range appCtx.Directory.Users() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		renderKeys(out, appCtx.Identities.DescribeKeys(id))
	}
	return nil
}

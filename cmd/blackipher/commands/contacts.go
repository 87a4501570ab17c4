package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blackipher/internal/domain"
)

func contactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List contacts and their fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printContacts(cmd.OutOrStdout(), "")
			return nil
		},
	}
}

// printContacts lists every contact, marking selected with '*'.
func printContacts(w io.Writer, selected domain.Username) {
	for _, name := range appCtx.Contacts() {
		id, _ := appCtx.Directory.Find(name)
		mark := " "
		if name == selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", mark, name, appCtx.Identities.Fingerprint(id))
	}
}

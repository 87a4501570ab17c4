package commands

import (
	"github.com/spf13/cobra"

	"blackipher/internal/domain"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <peer>",
		Short: "Open and print the conversation with a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			msgs, skipped, err := appCtx.Messages.History(peer)
			if err != nil {
				return err
			}
			renderConversation(cmd.OutOrStdout(), peer, msgs, skipped)
			return nil
		},
	}
}

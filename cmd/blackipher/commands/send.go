package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"blackipher/internal/domain"
)

// send <peer> <message...>: seal a message to <peer> and print it with its logs.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer> <message...>",
		Short: "Seal a message to a contact",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			if _, err := appCtx.Messages.Send(peer, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			return printLatest(cmd, peer)
		},
	}
}

func printLatest(cmd *cobra.Command, peer domain.Username) error {
	msgs, _, err := appCtx.Messages.History(peer)
	if err != nil {
		return err
	}
	if len(msgs) > 0 {
		renderMessage(cmd.OutOrStdout(), msgs[len(msgs)-1])
	}
	return nil
}

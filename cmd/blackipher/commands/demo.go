package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demo: send one message from the local user to every contact, then print
// each conversation.
func demoCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Send a message to every contact and print the conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, peer := range appCtx.Contacts() {
				if _, err := appCtx.Messages.Send(peer, text); err != nil {
					return fmt.Errorf("send to %s: %w", peer, err)
				}
				msgs, skipped, err := appCtx.Messages.History(peer)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "-- %s --\n", peer)
				renderConversation(out, peer, msgs, skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "hello", "message to send")
	return cmd
}

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"blackipher/internal/domain"
)

const (
	ansiFaint = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// faint de-emphasises audit logs. NO_COLOR disables it.
func faint(s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	return ansiFaint + strings.TrimSuffix(s, "\n") + ansiReset + "\n"
}

func renderMessage(w io.Writer, m domain.DecryptedMessage) {
	fmt.Fprintf(w, "%s → %s: %s\n", m.From, m.To, m.Plaintext)
	fmt.Fprint(w, faint(m.SendLog))
	fmt.Fprint(w, faint(m.ReceiveLog))
}

func renderConversation(w io.Writer, peer domain.Username, msgs []domain.DecryptedMessage, skipped int) {
	if len(msgs) == 0 && skipped == 0 {
		fmt.Fprintf(w, "no messages with %s\n", peer)
		return
	}
	for _, m := range msgs {
		renderMessage(w, m)
	}
	if skipped > 0 {
		fmt.Fprintf(w, "(%d message(s) with %s could not be opened with current keys)\n", skipped, peer)
	}
}

func renderKeys(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

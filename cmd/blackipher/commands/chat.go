package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"blackipher/internal/domain"
	"blackipher/internal/protocol/x3dh"
	"blackipher/internal/services/message"
)

const chatHelp = `commands:
  /contacts        list contacts
  /select <name>   choose who to talk to and show the conversation
  /history         show the conversation with the selected contact
  /keys [name]     print key material
  /stats           print operation counters
  /help            show this help
  /quit            leave
anything else is sent to the selected contact`

// chat: read lines from stdin until /quit or EOF.
func chatCmd() *cobra.Command {
	var selectFlag string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with the demo contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &chatSession{cmd: cmd, out: cmd.OutOrStdout()}
			fmt.Fprintf(s.out, "signed in as %s (%s)\n", appCtx.Local.Username, appCtx.Identities.Fingerprint(appCtx.Local))
			if selectFlag != "" {
				s.handle("/select " + selectFlag)
			} else {
				fmt.Fprintln(s.out, "type /help for commands")
			}
			return s.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&selectFlag, "select", "", "contact to select on start")
	return cmd
}

type chatSession struct {
	cmd      *cobra.Command
	out      io.Writer
	selected domain.Username
}

func (s *chatSession) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		quit, err := s.handle(sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

// handle processes one input line. A non-nil error ends the session.
func (s *chatSession) handle(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, "/") {
		return false, s.send(line)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true, nil
	case "/help":
		fmt.Fprintln(s.out, chatHelp)
	case "/contacts":
		printContacts(s.out, s.selected)
	case "/select":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: /select <name>")
			return false, nil
		}
		s.choose(domain.Username(fields[1]))
	case "/history":
		s.history()
	case "/keys":
		var name domain.Username
		if len(fields) > 1 {
			name = domain.Username(fields[1])
		}
		if err := printKeys(s.cmd, name); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	case "/stats":
		s.stats()
	default:
		fmt.Fprintf(s.out, "unknown command %s (try /help)\n", fields[0])
	}
	return false, nil
}

func (s *chatSession) choose(name domain.Username) {
	if !slices.Contains(appCtx.Contacts(), name) {
		fmt.Fprintf(s.out, "no contact named %s\n", name)
		return
	}
	s.selected = name
	fmt.Fprintf(s.out, "talking to %s\n", name)
	s.history()
}

func (s *chatSession) history() {
	msgs, skipped, err := appCtx.Messages.History(s.selected)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	renderConversation(s.out, s.selected, msgs, skipped)
}

// send reports input problems inline; only entropy failures are returned.
func (s *chatSession) send(text string) error {
	_, err := appCtx.Messages.Send(s.selected, text)
	switch {
	case err == nil:
		return printLatest(s.cmd, s.selected)
	case errors.Is(err, message.ErrEmptyMessage):
		return nil
	case errors.Is(err, message.ErrNoContactSelected):
		fmt.Fprintln(s.out, "select a contact first: /select <name>")
		return nil
	case errors.Is(err, message.ErrUnknownContact), errors.Is(err, x3dh.ErrSignedPreKeyRejected):
		fmt.Fprintf(s.out, "error: %v\n", err)
		return nil
	default:
		return err
	}
}

func (s *chatSession) stats() {
	snap, err := appCtx.Metrics.Snapshot()
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	ops := make([]string, 0, len(snap.Operations))
	for op := range snap.Operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		st := snap.Operations[op]
		fmt.Fprintf(s.out, "%-6s ok=%d failed=%d\n", op, st.Count, st.Errors)
	}
	cats := make([]string, 0, len(snap.Errors))
	for c := range snap.Errors {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(s.out, "errors.%s=%d\n", c, snap.Errors[c])
	}
}

package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--home", filepath.Join(t.TempDir(), "home"),
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--log-level", "error",
	}, args...))
	if err := root.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestChat_SelectSendAndHistory(t *testing.T) {
	out := run(t, "hello before select\n/select alice\nhello\n/history\n/stats\n/quit\nignored\n", "chat")

	for _, want := range []string{
		"signed in as katpercent",
		"select a contact first",
		"talking to alice",
		"katpercent → alice: hello\n== log ==\nSender: katpercent\nReceiver: alice\n",
		"== log (recv) ==\nReceiver: alice\nSender: katpercent\n",
		"seal   ok=1 failed=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ignored") {
		t.Fatal("input after /quit was processed")
	}
}

func TestChat_UnknownInputs(t *testing.T) {
	out := run(t, "/select carol\n/select katpercent\n/bogus\n/keys nobody\n", "chat")
	for _, want := range []string{
		"no contact named carol",
		"no contact named katpercent",
		"unknown command /bogus",
		`error: unknown identity "nobody"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSend_PrintsMessageAndLogs(t *testing.T) {
	out := run(t, "", "send", "bob", "hi", "there")
	if !strings.HasPrefix(out, "katpercent → bob: hi there\n== log ==\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Verify(peer.SPK signed by peer.ID) = true\n") {
		t.Fatalf("missing verification line:\n%s", out)
	}
}

func TestKeysAndContacts(t *testing.T) {
	keys := run(t, "", "keys", "alice")
	if !strings.HasPrefix(keys, "User: alice\n") || !strings.Contains(keys, "One-Time PreKey #3 (priv)") {
		t.Fatalf("keys output:\n%s", keys)
	}
	contacts := run(t, "", "contacts")
	if !strings.Contains(contacts, "alice") || !strings.Contains(contacts, "bob") || strings.Contains(contacts, "katpercent") {
		t.Fatalf("contacts output:\n%s", contacts)
	}
}

func TestDemo(t *testing.T) {
	out := run(t, "", "demo")
	for _, want := range []string{"-- alice --", "katpercent → alice: hello", "-- bob --", "katpercent → bob: hello"} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %q:\n%s", want, out)
		}
	}
}

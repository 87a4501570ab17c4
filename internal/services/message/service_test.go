package message_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"blackipher/internal/contacts"
	"blackipher/internal/domain"
	"blackipher/internal/metrics"
	"blackipher/internal/services/identity"
	"blackipher/internal/services/message"
	"blackipher/internal/store"
)

type fixture struct {
	svc     *message.Service
	dir     *contacts.Directory
	store   *store.ConversationFileStore
	path    string
	metrics *metrics.Metrics
}

func newFixture(t *testing.T, opts ...message.Option) fixture {
	t.Helper()
	ids := identity.New(nil)
	var all []*domain.Identity
	for _, name := range []domain.Username{"katpercent", "alice", "bob"} {
		id, err := ids.Create(name, 4)
		if err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		all = append(all, id)
	}
	f := fixture{
		dir:     contacts.New(all...),
		store:   store.NewConversationFileStore(),
		path:    filepath.Join(t.TempDir(), "session.json"),
		metrics: metrics.New(),
	}
	opts = append([]message.Option{message.WithMetrics(f.metrics)}, opts...)
	f.svc = message.New(all[0], f.dir, f.store, f.path, opts...)
	return f
}

func TestSendHistory_RoundTrip(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Send("alice", "  hello  "); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := f.svc.Send("alice", "second"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got, skipped, err := f.svc.History("alice")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if skipped != 0 || len(got) != 2 {
		t.Fatalf("got %d messages, %d skipped", len(got), skipped)
	}
	if got[0].Plaintext != "hello" || got[1].Plaintext != "second" {
		t.Fatalf("plaintexts = %q, %q", got[0].Plaintext, got[1].Plaintext)
	}
	if got[0].From != "katpercent" || got[0].To != "alice" {
		t.Fatalf("direction = %s -> %s", got[0].From, got[0].To)
	}
	if !strings.HasPrefix(got[0].SendLog, "== log ==\nSender: katpercent\nReceiver: alice\n") {
		t.Fatalf("send log = %q", got[0].SendLog)
	}
	if !strings.HasSuffix(got[0].ReceiveLog, "Plaintext: hello\n") {
		t.Fatalf("receive log = %q", got[0].ReceiveLog)
	}

	snap, _ := f.metrics.Snapshot()
	if snap.Operations[metrics.OpSeal].Count != 2 || snap.Operations[metrics.OpOpen].Count != 2 {
		t.Fatalf("counters = %+v", snap.Operations)
	}
}

func TestSend_PersistsSessionFile(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Send("bob", "persist me"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	reloaded := store.LoadConversations(f.path)
	msgs, ok := reloaded.Get("bob")
	if !ok || len(msgs) != 1 {
		t.Fatalf("reloaded bob conversation = %v, %v", msgs, ok)
	}
	svc := message.New(mustFind(t, f.dir, "katpercent"), f.dir, reloaded, f.path)
	got, _, err := svc.History("bob")
	if err != nil || len(got) != 1 || got[0].Plaintext != "persist me" {
		t.Fatalf("History after reload = %+v, %v", got, err)
	}
}

func TestSend_InputErrors(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Send("alice", "   \n\t"); !errors.Is(err, message.ErrEmptyMessage) {
		t.Fatalf("blank text: err = %v", err)
	}
	if _, err := f.svc.Send("", "hi"); !errors.Is(err, message.ErrNoContactSelected) {
		t.Fatalf("no peer: err = %v", err)
	}
	if _, err := f.svc.Send("carol", "hi"); !errors.Is(err, message.ErrUnknownContact) {
		t.Fatalf("unknown peer: err = %v", err)
	}
	if peers := f.store.Peers(); len(peers) != 0 {
		t.Fatalf("failed sends stored messages: %v", peers)
	}
}

func TestHistory_EmptyAndUnknown(t *testing.T) {
	f := newFixture(t)

	got, skipped, err := f.svc.History("bob")
	if err != nil || len(got) != 0 || skipped != 0 {
		t.Fatalf("empty history = %v, %d, %v", got, skipped, err)
	}
	if _, _, err := f.svc.History("carol"); !errors.Is(err, message.ErrUnknownContact) {
		t.Fatalf("unknown peer: err = %v", err)
	}
}

func TestHistory_SkipsMessagesForRegeneratedIdentity(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Send("alice", "old keys"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	fresh, err := identity.New(nil).Create("alice", 4)
	if err != nil {
		t.Fatal(err)
	}
	f.dir.Remove("alice")
	f.dir.Add(fresh)

	if _, err := f.svc.Send("alice", "new keys"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got, skipped, err := f.svc.History("alice")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if skipped != 1 || len(got) != 1 || got[0].Plaintext != "new keys" {
		t.Fatalf("got %+v, skipped %d", got, skipped)
	}
}

func TestSend_StrictRejectsBadSignedPreKey(t *testing.T) {
	f := newFixture(t, message.WithStrictVerification(true))
	mustFind(t, f.dir, "bob").SignedPreKeySignature[0] ^= 0x01

	if _, err := f.svc.Send("bob", "hi"); err == nil {
		t.Fatal("strict send to a contact with a bad signature succeeded")
	}
	if _, ok := f.store.Get("bob"); ok {
		t.Fatal("rejected message was stored")
	}

	lax := newFixture(t)
	mustFind(t, lax.dir, "bob").SignedPreKeySignature[0] ^= 0x01
	msg, err := lax.svc.Send("bob", "hi")
	if err != nil {
		t.Fatalf("default send: %v", err)
	}
	if !strings.Contains(msg.Log, "= false\n") {
		t.Fatalf("log does not record failed verification: %q", msg.Log)
	}
	snap, _ := lax.metrics.Snapshot()
	if snap.Errors[metrics.CategoryVerification] != 1 {
		t.Fatalf("verification failures = %d", snap.Errors[metrics.CategoryVerification])
	}
}

func mustFind(t *testing.T, d *contacts.Directory, name domain.Username) *domain.Identity {
	t.Helper()
	id, ok := d.Find(name)
	if !ok {
		t.Fatalf("%q not in directory", name)
	}
	return id
}

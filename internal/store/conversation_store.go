package store

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"blackipher/internal/domain"
	"blackipher/internal/metrics"
)

// sessionFile is the on-disk layout. Byte fields are base64 strings.
type sessionFile struct {
	Conversations map[domain.Username][]domain.SealedMessage `json:"conversations"`
}

// ConversationFileStore keeps per-peer message logs in memory and writes
// them to a single JSON session file on request.
type ConversationFileStore struct {
	mu            sync.Mutex
	conversations map[domain.Username][]domain.SealedMessage
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// Option configures a ConversationFileStore.
type Option func(*ConversationFileStore)

func WithLogger(l *slog.Logger) Option {
	return func(s *ConversationFileStore) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ConversationFileStore) { s.metrics = m }
}

// NewConversationFileStore returns an empty store.
func NewConversationFileStore(opts ...Option) *ConversationFileStore {
	s := &ConversationFileStore{
		conversations: map[domain.Username][]domain.SealedMessage{},
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// LoadConversations reads the session file at path. A missing or
// unparseable file yields an empty store; the cause is logged, never
// returned.
func LoadConversations(path string, opts ...Option) *ConversationFileStore {
	s := NewConversationFileStore(opts...)
	started := time.Now()

	var f sessionFile
	b, err := readFile(path)
	switch {
	case err != nil:
		s.loadFailed(path, err)
		return s
	case b == nil:
		s.logger.Debug("no session file", "operation", "load", "path", path)
		s.metrics.RecordOp(metrics.OpLoad, started)
		return s
	}
	if err := unmarshalJSON(b, &f); err != nil {
		s.loadFailed(path, err)
		return s
	}

	for peer, msgs := range f.Conversations {
		if msgs == nil {
			msgs = []domain.SealedMessage{}
		}
		s.conversations[peer] = msgs
	}
	s.logger.Debug("session loaded", "operation", "load", "path", path, "peers", len(s.conversations))
	s.metrics.RecordOp(metrics.OpLoad, started)
	return s
}

func (s *ConversationFileStore) loadFailed(path string, err error) {
	s.logger.Warn("session file unreadable, starting empty", "operation", "load", "path", path, "err", err)
	s.metrics.RecordOpError(metrics.OpLoad)
	s.metrics.RecordError(metrics.CategoryStorage)
}

// Append adds msg to the end of peer's conversation, creating it if needed.
func (s *ConversationFileStore) Append(peer domain.Username, msg domain.SealedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(peer, msg)
}

func (s *ConversationFileStore) appendLocked(peer domain.Username, msg domain.SealedMessage) {
	s.conversations[peer] = append(s.conversations[peer], msg.Clone())
}

// AppendAndSave appends msg and then writes the whole store to path.
// No other mutation can interleave between the two.
func (s *ConversationFileStore) AppendAndSave(path string, peer domain.Username, msg domain.SealedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(peer, msg)
	s.saveLocked(path)
}

// Save writes the store to path. Failures are logged and counted but never
// surfaced.
func (s *ConversationFileStore) Save(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(path)
}

func (s *ConversationFileStore) saveLocked(path string) {
	started := time.Now()
	if err := writeJSON(path, sessionFile{Conversations: s.conversations}, 0o600); err != nil {
		s.logger.Warn("session save failed", "operation", "save", "path", path, "err", err)
		s.metrics.RecordOpError(metrics.OpSave)
		s.metrics.RecordError(metrics.CategoryStorage)
		return
	}
	s.logger.Debug("session saved", "operation", "save", "path", path, "peers", len(s.conversations))
	s.metrics.RecordOp(metrics.OpSave, started)
}

// Get returns a copy of peer's conversation. ok is false when no
// conversation exists for peer.
func (s *ConversationFileStore) Get(peer domain.Username) ([]domain.SealedMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, ok := s.conversations[peer]
	if !ok {
		return nil, false
	}
	out := make([]domain.SealedMessage, len(msgs))
	for i, m := range msgs {
		out[i] = m.Clone()
	}
	return out, true
}

// Peers lists every peer with a conversation, sorted.
func (s *ConversationFileStore) Peers() []domain.Username {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Username, 0, len(s.conversations))
	for p := range s.conversations {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Compile-time assertion that ConversationFileStore implements domain.ConversationStore.
var _ domain.ConversationStore = (*ConversationFileStore)(nil)

package message

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blackipher/internal/domain"
	"blackipher/internal/metrics"
	"blackipher/internal/protocol/x3dh"
)

var (
	// ErrNoContactSelected indicates an empty peer name.
	ErrNoContactSelected = errors.New("no contact selected")
	// ErrUnknownContact indicates the peer is not in the directory.
	ErrUnknownContact = errors.New("unknown contact")
	// ErrEmptyMessage indicates the text was empty after trimming.
	ErrEmptyMessage = errors.New("empty message")
)

// Service sends and lists messages on behalf of one local identity.
type Service struct {
	local       *domain.Identity
	directory   domain.Directory
	store       domain.ConversationStore
	sessionPath string
	strict      bool
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithStrictVerification refuses to seal to contacts whose signed pre-key
// signature does not verify.
func WithStrictVerification(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// New returns a Service sending as local. Conversations are flushed to
// sessionPath after every send.
func New(
	local *domain.Identity,
	directory domain.Directory,
	store domain.ConversationStore,
	sessionPath string,
	opts ...Option,
) *Service {
	s := &Service{
		local:       local,
		directory:   directory,
		store:       store,
		sessionPath: sessionPath,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "message")
	return s
}

// Local returns the sending identity's name.
func (s *Service) Local() domain.Username { return s.local.Username }

func (s *Service) contact(peer domain.Username) (*domain.Identity, error) {
	if peer == "" {
		return nil, ErrNoContactSelected
	}
	id, ok := s.directory.Find(peer)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContact, peer)
	}
	return id, nil
}

// Send trims text, seals it to peer and persists it.
func (s *Service) Send(peer domain.Username, text string) (domain.SealedMessage, error) {
	started := time.Now()
	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.RecordError(metrics.CategoryInput)
		return domain.SealedMessage{}, ErrEmptyMessage
	}
	contact, err := s.contact(peer)
	if err != nil {
		s.metrics.RecordError(metrics.CategoryInput)
		return domain.SealedMessage{}, err
	}

	sealed, err := x3dh.Seal(s.local, contact, text, x3dh.WithVerification(s.strict))
	if err != nil {
		s.metrics.RecordOpError(metrics.OpSeal)
		s.metrics.RecordError(metrics.CategoryCrypto)
		s.logger.Warn("seal failed", "operation", "send", "peer", peer, "err", err)
		return domain.SealedMessage{}, err
	}
	s.metrics.RecordOp(metrics.OpSeal, started)
	if !sealed.Verified {
		s.metrics.RecordError(metrics.CategoryVerification)
		s.logger.Warn("peer signed pre-key does not verify", "operation", "send", "peer", peer)
	}

	msg := sealed.Message()
	s.store.AppendAndSave(s.sessionPath, peer, msg)
	s.logger.Info("message sent", "operation", "send", "peer", peer, "ciphertext_bytes", len(msg.Ciphertext))
	return msg, nil
}

// History opens every stored message to peer, in order. skipped counts
// messages that no longer open with peer's current keys.
func (s *Service) History(peer domain.Username) ([]domain.DecryptedMessage, int, error) {
	contact, err := s.contact(peer)
	if err != nil {
		return nil, 0, err
	}
	stored, ok := s.store.Get(peer)
	if !ok {
		return nil, 0, nil
	}

	out := make([]domain.DecryptedMessage, 0, len(stored))
	skipped := 0
	for _, m := range stored {
		started := time.Now()
		opened, ok := x3dh.OpenMessage(contact, m, s.local.Username)
		if !ok {
			skipped++
			s.metrics.RecordOpError(metrics.OpOpen)
			continue
		}
		s.metrics.RecordOp(metrics.OpOpen, started)
		out = append(out, domain.DecryptedMessage{
			From:       s.local.Username,
			To:         peer,
			Plaintext:  opened.Plaintext,
			SendLog:    m.Log,
			ReceiveLog: opened.Log,
		})
	}
	if skipped > 0 {
		s.logger.Debug("messages skipped", "operation", "history", "peer", peer, "skipped", skipped)
	}
	return out, skipped, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)

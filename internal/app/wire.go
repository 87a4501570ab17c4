package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"blackipher/internal/contacts"
	"blackipher/internal/domain"
	"blackipher/internal/metrics"
	identitysvc "blackipher/internal/services/identity"
	messagesvc "blackipher/internal/services/message"
	"blackipher/internal/store"
)

// Wire bundles the services, stores and identities for the CLI.
type Wire struct {
	Config      Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Identities  *identitysvc.Service
	Directory   *contacts.Directory
	Store       *store.ConversationFileStore
	Messages    *messagesvc.Service
	Local       *domain.Identity
	SessionPath string
}

// NewWire constructs the dependency graph from cfg. Every identity is
// generated fresh; only conversations are read from disk. Operational logs
// go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if logOut == nil {
		logOut = io.Discard
	}
	logger := NewLogger(logOut, cfg.LogLevel)
	m := metrics.New()

	home, err := cfg.HomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home %q: %w", cfg.Home, err)
	}
	sessionPath, err := cfg.SessionPath()
	if err != nil {
		return nil, fmt.Errorf("resolve session file %q: %w", cfg.SessionFile, err)
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		// Saves will fail and be logged; the session is still usable.
		logger.Warn("cannot create home", "component", "app", "path", home, "err", err)
	}

	ids := identitysvc.New(logger)
	local, err := ids.Create(domain.Username(cfg.LocalUser), cfg.OneTimeKeys)
	if err != nil {
		return nil, fmt.Errorf("create local identity: %w", err)
	}
	dir := contacts.New(local)
	for _, name := range cfg.Contacts {
		id, err := ids.Create(domain.Username(name), cfg.OneTimeKeys)
		if err != nil {
			return nil, fmt.Errorf("create contact identity: %w", err)
		}
		dir.Add(id)
	}

	st := store.LoadConversations(sessionPath, store.WithLogger(logger), store.WithMetrics(m))
	msgs := messagesvc.New(local, dir, st, sessionPath,
		messagesvc.WithLogger(logger),
		messagesvc.WithMetrics(m),
		messagesvc.WithStrictVerification(cfg.StrictSignedPreKey),
	)

	logger.Debug("wired", "component", "app", "local", local.Username, "contacts", dir.Len(), "session", sessionPath)
	return &Wire{
		Config:      cfg,
		Logger:      logger,
		Metrics:     m,
		Identities:  ids,
		Directory:   dir,
		Store:       st,
		Messages:    msgs,
		Local:       local,
		SessionPath: sessionPath,
	}, nil
}

// Contacts lists directory names other than the local user, in order.
func (w *Wire) Contacts() []domain.Username {
	var out []domain.Username
	for _, name := range w.Directory.List() {
		if name != w.Local.Username {
			out = append(out, name)
		}
	}
	return out
}

package interfaces

import domaintypes "blackipher/internal/domain/types"

// ConversationStore is the per-peer, append-only log of sealed messages.
//
// Save never reports failure; callers cannot observe whether persistence
// succeeded.
type ConversationStore interface {
	Append(peer domaintypes.Username, message domaintypes.SealedMessage)
	AppendAndSave(path string, peer domaintypes.Username, message domaintypes.SealedMessage)
	Save(path string)
	Get(peer domaintypes.Username) ([]domaintypes.SealedMessage, bool)
	Peers() []domaintypes.Username
}

// Directory is the in-memory list of known identities.
// Names are not unique; lookups return the first match in insertion order.
type Directory interface {
	Find(name domaintypes.Username) (*domaintypes.Identity, bool)
	List() []domaintypes.Username
}

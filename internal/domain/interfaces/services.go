package interfaces

import domaintypes "blackipher/internal/domain/types"

// IdentityService creates and inspects identities.
type IdentityService interface {
	Create(name domaintypes.Username, oneTimePreKeys int) (*domaintypes.Identity, error)
	DescribeKeys(id *domaintypes.Identity) []string
	Fingerprint(id *domaintypes.Identity) domaintypes.Fingerprint
}

// MessageService seals outgoing messages and opens stored conversations.
type MessageService interface {
	Send(peer domaintypes.Username, text string) (domaintypes.SealedMessage, error)
	History(peer domaintypes.Username) (messages []domaintypes.DecryptedMessage, skipped int, err error)
}

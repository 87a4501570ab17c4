package domain

import (
	interfaces "blackipher/internal/domain/interfaces"
	types "blackipher/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username          = types.Username
	Fingerprint       = types.Fingerprint
	OneTimePreKeyID   = types.OneTimePreKeyID
	Identity          = types.Identity
	OneTimePreKeyPair = types.OneTimePreKeyPair
	SealedMessage     = types.SealedMessage
	DecryptedMessage  = types.DecryptedMessage
	X25519Public      = types.X25519Public
	X25519Private     = types.X25519Private
	Ed25519Public     = types.Ed25519Public
	Ed25519Private    = types.Ed25519Private
	Nonce             = types.Nonce
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService   = interfaces.IdentityService
	MessageService    = interfaces.MessageService
	ConversationStore = interfaces.ConversationStore
	Directory         = interfaces.Directory
)

// Function re-exports for slice-to-array conversions.
var (
	X25519PublicFromSlice = types.X25519PublicFromSlice
	NonceFromSlice        = types.NonceFromSlice
)

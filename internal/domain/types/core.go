package types

// Username names a participant. Uniqueness is not enforced anywhere.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// OneTimePreKeyID identifies a one-time pre-key within its owner's pool.
type OneTimePreKeyID string

// String returns the string form of the identifier.
func (id OneTimePreKeyID) String() string { return string(id) }

package types

// SealedMessage is one stored, directionally-sent message. It carries
// everything the recipient needs besides their own signed pre-key secret.
// The peer it belongs to is the conversation key it is filed under.
type SealedMessage struct {
	Ciphertext   []byte `json:"ciphertext"`
	EphemeralKey []byte `json:"ephemeral_pk"`
	Nonce        []byte `json:"nonce"`
	Log          string `json:"log"`
}

// Clone returns a copy of m that shares no byte slices with it.
func (m SealedMessage) Clone() SealedMessage {
	return SealedMessage{
		Ciphertext:   append([]byte(nil), m.Ciphertext...),
		EphemeralKey: append([]byte(nil), m.EphemeralKey...),
		Nonce:        append([]byte(nil), m.Nonce...),
		Log:          m.Log,
	}
}

// DecryptedMessage is a stored message opened for display.
type DecryptedMessage struct {
	From       Username
	To         Username
	Plaintext  string
	SendLog    string
	ReceiveLog string
}

package x3dh

import (
	"encoding/hex"
	"fmt"
	"strings"

	"blackipher/internal/domain"
)

const (
	sendLogHeader    = "== log =="
	receiveLogHeader = "== log (recv) =="
)

type sendLog struct {
	Sender       domain.Username
	Receiver     domain.Username
	Verified     bool
	EphemeralKey domain.X25519Public
	SharedLen    int
	Nonce        domain.Nonce
	Ciphertext   []byte
}

type receiveLog struct {
	Receiver   domain.Username
	Sender     domain.Username
	SharedLen  int
	Nonce      domain.Nonce
	Ciphertext []byte
	Plaintext  string
}

// formatSendLog renders the sender's audit log. Every line ends in '\n'.
func formatSendLog(l sendLog) string {
	var b strings.Builder
	b.WriteString(sendLogHeader + "\n")
	fmt.Fprintf(&b, "Sender: %s\n", l.Sender)
	fmt.Fprintf(&b, "Receiver: %s\n", l.Receiver)
	fmt.Fprintf(&b, "Verify(peer.SPK signed by peer.ID) = %t\n", l.Verified)
	fmt.Fprintf(&b, "Ephemeral PK: %s\n", hex.EncodeToString(l.EphemeralKey.Slice()))
	fmt.Fprintf(&b, "DH(ephemeral, peer.SPK): precomputed (%d bytes)\n", l.SharedLen)
	fmt.Fprintf(&b, "Nonce: %s\n", hex.EncodeToString(l.Nonce.Slice()))
	fmt.Fprintf(&b, "Ciphertext: %s\n", hex.EncodeToString(l.Ciphertext))
	return b.String()
}

// formatReceiveLog renders the receiver's audit log. Every line ends in '\n'.
func formatReceiveLog(l receiveLog) string {
	var b strings.Builder
	b.WriteString(receiveLogHeader + "\n")
	fmt.Fprintf(&b, "Receiver: %s\n", l.Receiver)
	fmt.Fprintf(&b, "Sender: %s\n", l.Sender)
	fmt.Fprintf(&b, "DH(sender.ephemeral, self.SPK): precomputed (%d bytes)\n", l.SharedLen)
	fmt.Fprintf(&b, "Nonce: %s\n", hex.EncodeToString(l.Nonce.Slice()))
	fmt.Fprintf(&b, "Ciphertext: %s\n", hex.EncodeToString(l.Ciphertext))
	fmt.Fprintf(&b, "Plaintext: %s\n", l.Plaintext)
	return b.String()
}

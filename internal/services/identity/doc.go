// Package identity creates participant identities and renders their key
// material for inspection.
//
// An identity holds an Ed25519 signing key pair, an X25519 signed pre-key
// whose public half is signed by the signing key, and a pool of X25519
// one-time pre-keys. Identities are never persisted: every run generates new
// ones.
package identity

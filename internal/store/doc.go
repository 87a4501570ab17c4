// Package store persists BlacKipher conversations.
//
// ConversationFileStore holds every conversation in memory, keyed by peer
// name, and serialises the whole map to one JSON document on Save. Reads
// never fail: a missing or corrupt session file produces an empty store.
// Writes go through a temp file and rename so a crash mid-save leaves the
// previous file intact. All methods are safe for concurrent use.
package store

// Package message drives the send and history flows for the local user.
//
// Send seals text to a contact's signed pre-key, files the result under the
// contact's name and flushes the session file. History re-opens a stored
// conversation with the contact's current keys; messages sealed to keys that
// no longer exist are skipped and counted.
package message

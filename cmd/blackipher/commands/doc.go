// Package commands defines the blackipher CLI and wires dependencies for subcommands.
//
// Commands
//
//   - chat           Interactive session: select a contact and type messages
//   - send           Seal a message to a contact and print its logs
//   - history        Open and print a stored conversation
//   - keys           Print key material for one or all identities
//   - contacts       List contacts with fingerprints
//   - fingerprint    Print the local identity fingerprint
//   - demo           Send a message to every contact and print the result
//
// # Implementation
//
// The root command loads the config and builds the dependency graph before any
// subcommand runs. Every identity is generated fresh per process, so messages
// stored by an earlier run are listed as skipped rather than opened.
package commands

// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML and the environment, generates the demo
// identities, loads the session file and exposes the resulting services via
// the Wire struct for commands to use.
package app

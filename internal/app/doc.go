// Package app wires application dependencies for the CLI.
//
// It loads the YAML store configuration, builds every configured store
// through a datamanager registry and exposes the operations the commands
// run, all over free-form JSON records.
package app

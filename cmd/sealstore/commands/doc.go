// Package commands defines the sealstore CLI.
//
// Commands
//
//   - kinds   List the store kinds the registry can build
//   - check   Build every store in a configuration file and report on it
//   - seal    Save JSON records into a store and print them read back
//
// # Implementation
//
// Commands that take --config load the YAML file, build every store through
// a fresh registry and wipe all keys before returning. Nothing outlives the
// process.
package commands

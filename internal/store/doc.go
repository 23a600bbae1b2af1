// Package store provides the in-memory store kinds and their configurations.
//
// Every store implements domain.Store. The package includes:
//   - KeyValueStore, the identifier-indexed map every kind is built on
//   - MemoryStore, the plain kind ("memory"), with equality filters
//   - EncryptedStore, a decorator over a KeyValueStore of sealed bytes
//     ("encrypted-memory") that keeps only ciphertext in memory
//   - MemoryConfig and EncryptedMemoryConfig, the datamanager configurations
//     for those kinds, and RegisterBuiltins to install them
//
// All stores are safe for concurrent use via internal locking. SaveAll is
// not atomic: a failure part way leaves earlier records saved.
package store

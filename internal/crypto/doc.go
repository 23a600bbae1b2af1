// Package crypto holds the primitives behind encrypted stores.
//
// Contents
//
//   - Passphrase key derivation with PBKDF2-SHA256, scrypt or Argon2id (KDF)
//   - XChaCha20-Poly1305 sealing with caller-supplied nonces
//     (SealXChaCha20Poly1305, OpenXChaCha20Poly1305)
//   - Adapter, which derives one key per instance from a passphrase and a
//     fresh salt, keeps it in a memguard buffer and seals records under it
//   - Short fingerprints for display and logging (Fingerprint)
//
// # Notes
//
// Neither the salt nor the key ever leaves an Adapter. Data sealed by one
// Adapter cannot be opened by another, even with the same passphrase.
package crypto

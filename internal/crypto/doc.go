// Package crypto provides the cryptographic primitives for the CipherChat
// protocol: key pair issuance, passphrase-based private key protection,
// hybrid per-message encryption, and public key fingerprints.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - RSA-2048 with OAEP-SHA-256: asymmetric encryption used to wrap
//     one-time message keys. Provides a ~112-bit security margin.
//
//   - AES-256-GCM: authenticated encryption with associated data (AEAD)
//     for message content, the private key vault, and backup documents.
//     Provides confidentiality and integrity in one primitive.
//
//   - PBKDF2-HMAC-SHA-256 (RFC 8018): password-based key derivation for
//     the private key vault (100,000 iterations) and backups (150,000
//     iterations), with a 16-byte random salt.
//
// These parameters are fixed per format version. Envelopes produced with
// them must remain decryptable, so any future change has to be carried in
// the envelope's own version field rather than applied retroactively.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing
// attackers to recover the authentication key and forge messages. [Seal]
// does not track nonces; callers are responsible for generating a fresh
// random nonce via [RandomNonce] on every call.
//
// [Open] fails closed: any modification of the ciphertext, nonce, or key
// yields [ErrAuthenticationFailed] and never partial plaintext. The error
// deliberately does not distinguish a wrong key from tampered data.
//
// # Key Management
//
// Use [GenerateKeyPair] to create a new RSA-2048 identity. The private
// half must only be persisted inside a [PrivateKeyEnvelope] produced by
// [WrapPrivateKey]. Unwrapped private keys should live in process memory
// only for the duration of a session and never be logged or serialized.
package crypto

// Package cipherchat implements the end-to-end encryption core of the
// CipherChat messaging application: key pair issuance, passphrase-based
// private key protection, hybrid per-message encryption with dual
// recipient/sender readability, public key fingerprints, and a
// double-encrypted backup export/import format.
//
// The package performs no I/O, storage, or network calls. Servers and
// transports are untrusted relays: they only ever see envelopes produced
// here, never plaintext or unencrypted private keys.
//
// Basic usage:
//
//	// Registration: issue an identity and protect the private key.
//	identity, err := cipherchat.GenerateIdentity()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	envelope, err := identity.Wrap("correct-horse")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Store envelope; share identity.PublicKeyPEM() freely.
//
//	// Login: recover the key into a session.
//	session, err := cipherchat.Unlock(envelope, "correct-horse")
//	if err != nil {
//	    log.Fatal(err) // cipherchat.ErrWrongPassphrase
//	}
//	defer session.Close()
//
//	// Sending: one readable copy for each party.
//	msg, err := session.EncryptTo([]byte("hello"), recipientPEM)
//
//	// Receiving.
//	plaintext, err := session.Decrypt(bundle)
//
// All operations are pure transformations over their inputs and safe for
// concurrent use; decrypting the messages of a conversation in parallel
// is fine, but callers must re-sort results by the message's own
// timestamp, not by completion order. Key derivation is deliberately slow
// (tens to hundreds of milliseconds) and belongs on a worker, not an
// interactive thread.
package cipherchat

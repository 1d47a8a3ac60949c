package cipherchat

import (
	"github.com/cipherchat/core-go/internal/crypto"
)

// MessageBundle is one reader's encrypted copy of a single message: the
// plaintext sealed under a one-time symmetric key, with that key wrapped
// for the reader's public key. Bundles are immutable once created. All
// binary fields are standard base64.
type MessageBundle struct {
	// Ciphertext is the sealed message content.
	Ciphertext string `json:"ciphertext"`
	// EncKey is the one-time key wrapped for the reader.
	EncKey string `json:"encKey"`
	// IV is the 12-byte AEAD nonce.
	IV string `json:"iv"`
}

func (b *MessageBundle) internal() *crypto.MessageBundle {
	return &crypto.MessageBundle{Ciphertext: b.Ciphertext, EncKey: b.EncKey, IV: b.IV}
}

func bundleFromInternal(b *crypto.MessageBundle) *MessageBundle {
	return &MessageBundle{Ciphertext: b.Ciphertext, EncKey: b.EncKey, IV: b.IV}
}

// EncryptedMessage is the transport form of a sent message: two
// independent bundles over the same plaintext, one readable by the
// recipient and one by the sender. The copies do not share a symmetric
// key, so compromising one wrapped key never exposes the other copy.
type EncryptedMessage struct {
	// Recipient is the copy wrapped for the recipient's public key.
	Recipient *MessageBundle `json:"recipient"`
	// Sender is the copy wrapped for the sender's own public key.
	Sender *MessageBundle `json:"sender"`
}

// EncryptMessage encrypts a plaintext for transport, producing the
// recipient-readable and sender-readable copies in one call. Both keys
// are PEM-encoded public keys.
func EncryptMessage(plaintext []byte, recipientPEM, senderPEM string) (*EncryptedMessage, error) {
	recipientPub, _, err := crypto.ParsePublicKeyPEM(recipientPEM)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	senderPub, _, err := crypto.ParsePublicKeyPEM(senderPEM)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	recipientBundle, err := crypto.EncryptFor(plaintext, recipientPub)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	senderBundle, err := crypto.EncryptFor(plaintext, senderPub)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &EncryptedMessage{
		Recipient: bundleFromInternal(recipientBundle),
		Sender:    bundleFromInternal(senderBundle),
	}, nil
}

package cipherchat

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cipherchat/core-go/internal/crypto"
)

const (
	// BackupMagic identifies a CipherChat backup document. Validated
	// before any decryption attempt.
	BackupMagic = "CIPHERCHAT_BACKUP_V1"
	// BackupVersion is the current backup format version. Key
	// derivation parameters are keyed off this field, so raising the
	// iteration count later means minting a new version, not changing
	// the constants under existing backups.
	BackupVersion = "1.0"
)

// BackupStats is the cleartext message/contact count summary carried on
// the envelope so a human can identify a backup file without decrypting
// it. Not secret, not authenticated until decode succeeds.
type BackupStats struct {
	TotalMessages int `json:"totalMessages"`
	TotalContacts int `json:"totalContacts"`
}

// BackupOwner identifies the account a backup belongs to.
type BackupOwner struct {
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

// Contact is one address book entry carried in a backup.
type Contact struct {
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

// BackupMessage is one archived message: delivery metadata plus both
// reader copies exactly as they were produced at send time. The inner
// bundles stay encrypted; a backup never touches message plaintext.
type BackupMessage struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	SentAt time.Time `json:"sentAt"`
	// Recipient is the recipient-readable copy.
	Recipient *MessageBundle `json:"recipient"`
	// Sender is the sender-readable copy.
	Sender *MessageBundle `json:"sender"`
}

// BackupPayload is the plaintext structure of a backup once the outer
// encryption layer is removed.
type BackupPayload struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	Owner     BackupOwner     `json:"owner"`
	Contacts  []Contact       `json:"contacts"`
	Messages  []BackupMessage `json:"messages"`
	Stats     BackupStats     `json:"stats"`
}

// BackupEnvelope is the document root of a backup file. Everything
// outside Ciphertext is cleartext identification data; Ciphertext is the
// AEAD-sealed serialization of the entire BackupPayload.
type BackupEnvelope struct {
	Magic      string      `json:"magic"`
	Version    string      `json:"version"`
	CreatedAt  time.Time   `json:"createdAt"`
	Salt       string      `json:"salt"`
	IV         string      `json:"iv"`
	Ciphertext string      `json:"ciphertext"`
	Stats      BackupStats `json:"stats"`
	Owner      string      `json:"owner"`
}

// Validate checks the envelope structure before any cryptographic work.
// Failing fast here matters: the key derivation behind it costs 150,000
// PBKDF2 iterations, which must not be spent on a file that is not a
// backup at all.
func (e *BackupEnvelope) Validate() error {
	if e.Magic != BackupMagic {
		return fmt.Errorf("%w: not a CipherChat backup", ErrInvalidFormat)
	}
	if _, err := backupIterations(e.Version); err != nil {
		return err
	}

	salt, err := crypto.FromBase64(e.Salt)
	if err != nil || len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: bad salt", ErrInvalidFormat)
	}
	iv, err := crypto.FromBase64(e.IV)
	if err != nil || len(iv) != crypto.AESNonceSize {
		return fmt.Errorf("%w: bad iv", ErrInvalidFormat)
	}
	if e.Ciphertext == "" {
		return fmt.Errorf("%w: empty ciphertext", ErrInvalidFormat)
	}
	return nil
}

// backupIterations returns the PBKDF2 iteration count for a backup
// format version. Versions are the unit of parameter evolution: older
// backups keep decoding with the parameters they were created under.
func backupIterations(version string) (int, error) {
	switch version {
	case "1.0":
		return crypto.BackupIterations, nil
	default:
		return 0, fmt.Errorf("%w: unsupported version %q", ErrInvalidFormat, version)
	}
}

// EncodeBackup serializes a payload and seals it under a backup
// password. The payload's version, timestamp, and stats are filled in;
// stats are always recomputed from the actual contents so the cleartext
// summary can never drift from the sealed data.
func EncodeBackup(payload *BackupPayload, password string) (*BackupEnvelope, error) {
	now := time.Now().UTC().Truncate(time.Second)

	payload.Version = BackupVersion
	if payload.CreatedAt.IsZero() {
		payload.CreatedAt = now
	}
	payload.Stats = BackupStats{
		TotalMessages: len(payload.Messages),
		TotalContacts: len(payload.Contacts),
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	salt, err := crypto.RandomSalt()
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	nonce, err := crypto.RandomNonce()
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	key := crypto.DeriveKey([]byte(password), salt, crypto.BackupIterations)
	defer crypto.Zero(key)

	ct, err := crypto.Seal(key, nonce, plaintext)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &BackupEnvelope{
		Magic:      BackupMagic,
		Version:    BackupVersion,
		CreatedAt:  payload.CreatedAt,
		Salt:       crypto.ToBase64(salt),
		IV:         crypto.ToBase64(nonce),
		Ciphertext: crypto.ToBase64(ct),
		Stats:      payload.Stats,
		Owner:      payload.Owner.Username,
	}, nil
}

// DecodeBackup validates the envelope, re-derives the key from the
// stored salt and the supplied password, and opens the payload. An
// authentication failure — wrong password or tampered ciphertext —
// surfaces uniformly as ErrWrongPassword.
//
// DecodeBackup does not know who is asking: callers restoring a backup
// MUST verify ownership via VerifyOwner before accepting any contained
// message or contact.
func DecodeBackup(envelope *BackupEnvelope, password string) (*BackupPayload, error) {
	if err := envelope.Validate(); err != nil {
		return nil, err
	}

	iterations, err := backupIterations(envelope.Version)
	if err != nil {
		return nil, err
	}

	// Sizes were validated above.
	salt, _ := crypto.FromBase64(envelope.Salt)
	nonce, _ := crypto.FromBase64(envelope.IV)

	ct, err := crypto.FromBase64(envelope.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext", ErrInvalidFormat)
	}

	key := crypto.DeriveKey([]byte(password), salt, iterations)
	defer crypto.Zero(key)

	plaintext, err := crypto.Open(key, nonce, ct)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return nil, ErrWrongPassword
		}
		return nil, wrapCryptoError(err)
	}

	var payload BackupPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, fmt.Errorf("%w: bad payload", ErrInvalidFormat)
	}
	return &payload, nil
}

// ExportBackup encodes a payload and marshals the envelope into the
// backup file form.
func ExportBackup(payload *BackupPayload, password string) ([]byte, error) {
	envelope, err := EncodeBackup(payload, password)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope)
}

// Backup is a decoded backup awaiting the ownership check.
type Backup struct {
	Envelope *BackupEnvelope
	Payload  *BackupPayload
}

// OpenBackup parses and decodes a backup file. The result is not yet
// authorized for restore: call VerifyOwner first.
func OpenBackup(data []byte, password string) (*Backup, error) {
	envelope, err := ParseBackup(data)
	if err != nil {
		return nil, err
	}

	payload, err := DecodeBackup(envelope, password)
	if err != nil {
		return nil, err
	}

	return &Backup{Envelope: envelope, Payload: payload}, nil
}

// ParseBackup unmarshals and structurally validates a backup file
// without decrypting it.
func ParseBackup(data []byte) (*BackupEnvelope, error) {
	var envelope BackupEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: not a JSON document", ErrInvalidFormat)
	}
	if err := envelope.Validate(); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// VerifyOwner checks that the backup's declared owner matches the
// identity performing the restore. Restore workflows MUST call this
// before accepting any payload contents; on mismatch the whole restore
// is aborted with zero partial writes.
func (b *Backup) VerifyOwner(username string) error {
	if b.Payload.Owner.Username != username {
		return fmt.Errorf("%w: backup owner %q, restoring as %q",
			ErrOwnershipMismatch, b.Payload.Owner.Username, username)
	}
	return nil
}

// BackupInfo is the cleartext header of a backup file, available
// without the password.
type BackupInfo struct {
	Version   string
	CreatedAt time.Time
	Owner     string
	Stats     BackupStats
}

// InspectBackup reads the cleartext identification fields of a backup
// file so a human can tell whose backup it is without decrypting it.
func InspectBackup(data []byte) (*BackupInfo, error) {
	envelope, err := ParseBackup(data)
	if err != nil {
		return nil, err
	}

	return &BackupInfo{
		Version:   envelope.Version,
		CreatedAt: envelope.CreatedAt,
		Owner:     envelope.Owner,
		Stats:     envelope.Stats,
	}, nil
}

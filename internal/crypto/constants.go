package crypto

const (
	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// SaltSize is the size of a PBKDF2 salt in bytes.
	SaltSize = 16

	// VaultIterations is the PBKDF2 iteration count for private key
	// protection.
	VaultIterations = 100000
	// BackupIterations is the PBKDF2 iteration count for backup
	// protection. Higher than VaultIterations because backups are a
	// higher-value, less frequently derived target.
	BackupIterations = 150000

	// RSAKeyBits is the modulus size of an identity key pair.
	RSAKeyBits = 2048
	// WrappedKeySize is the size of an RSA-OAEP wrapped message key in
	// bytes. OAEP output always equals the modulus size.
	WrappedKeySize = RSAKeyBits / 8
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "RSA-2048-OAEP-SHA-256:AES-256-GCM:PBKDF2-HMAC-SHA-256"

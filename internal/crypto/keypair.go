package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

const publicKeyPEMType = "PUBLIC KEY"

// KeyPair represents an RSA-2048 identity key pair.
type KeyPair struct {
	// Private is the RSA private key.
	Private *rsa.PrivateKey
	// PublicDER is the PKIX (SubjectPublicKeyInfo) encoding of the
	// public key. Fingerprints are computed over these bytes.
	PublicDER []byte
	// PublicPEM is the PEM rendering of PublicDER for display and
	// interchange.
	PublicPEM string
}

// GenerateKeyPair creates a new RSA-2048 key pair. It fails only on
// entropy source exhaustion, which is fatal and non-retryable.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(reader(), RSAKeyBits)
	if err != nil {
		return nil, &EntropyError{Err: err}
	}
	return keyPairFromPrivate(priv)
}

// KeyPairFromPrivate rebuilds the exportable forms from an existing
// private key, e.g. after unwrapping a vault envelope.
func KeyPairFromPrivate(priv *rsa.PrivateKey) (*KeyPair, error) {
	return keyPairFromPrivate(priv)
}

func keyPairFromPrivate(priv *rsa.PrivateKey) (*KeyPair, error) {
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &KeyPair{
		Private:   priv,
		PublicDER: der,
		PublicPEM: EncodePublicKeyPEM(der),
	}, nil
}

// EncodePublicKeyPEM renders PKIX DER bytes as a PEM block.
func EncodePublicKeyPEM(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: der}))
}

// ParsePublicKeyPEM parses a PEM-encoded public key and returns the RSA
// key together with its DER bytes.
func ParsePublicKeyPEM(s string) (*rsa.PublicKey, []byte, error) {
	block, _ := pem.Decode([]byte(s))
	if block == nil || block.Type != publicKeyPEMType {
		return nil, nil, ErrInvalidPublicKey
	}

	pub, err := ParsePublicKeyDER(block.Bytes)
	if err != nil {
		return nil, nil, err
	}
	return pub, block.Bytes, nil
}

// ParsePublicKeyDER parses PKIX DER bytes into an RSA public key.
func ParsePublicKeyDER(der []byte) (*rsa.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return pub, nil
}

// MarshalPrivateKey encodes a private key as PKCS#8 DER. This is the
// byte form sealed inside a vault envelope.
func MarshalPrivateKey(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return der, nil
}

// ParsePrivateKey decodes a PKCS#8 DER private key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}
	return priv, nil
}

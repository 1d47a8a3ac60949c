package cipherchat

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIdentity(t *testing.T) {
	id := testIdentity(t, 0)

	assert.NotEmpty(t, id.PublicKeyPEM())

	// 16 groups of 4 uppercase hex chars.
	fpRe := regexp.MustCompile(`^[0-9A-F]{4}( [0-9A-F]{4}){15}$`)
	assert.Regexp(t, fpRe, id.Fingerprint())
}

func TestIdentity_WrapProducesWireFormat(t *testing.T) {
	id := testIdentity(t, 0)

	envelope, err := id.Wrap("correct-horse")
	require.NoError(t, err)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc, 3)
	assert.Contains(t, doc, "ct")
	assert.Contains(t, doc, "salt")
	assert.Contains(t, doc, "iv")
}

func TestMessageBundle_WireFieldNames(t *testing.T) {
	sender := testIdentity(t, 0)
	recipient := testIdentity(t, 1)

	msg, err := EncryptMessage([]byte("hi"), recipient.PublicKeyPEM(), sender.PublicKeyPEM())
	require.NoError(t, err)

	raw, err := json.Marshal(msg.Recipient)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc, 3)
	assert.Contains(t, doc, "ciphertext")
	assert.Contains(t, doc, "encKey")
	assert.Contains(t, doc, "iv")
}

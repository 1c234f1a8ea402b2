package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature_RoundTrip(t *testing.T) {
	// A digest produced by the signer must verify against the recomputation
	// the server performs

	signer := NewDefaultRequestSigner()
	body := []byte(`{"side":"buy","product_id":"BTC-USD"}`)

	sig, err := signer.Sign(testSecret, "/orders", "POST", body)
	require.NoError(t, err)

	err = VerifySignature(testSecret, "/orders", "POST", body, sig.TimestampString(), sig.Digest)
	assert.NoError(t, err)
}

func TestVerifySignature_TimestampTampering(t *testing.T) {
	// Echoing a timestamp other than the one signed must fail verification

	signer := NewDefaultRequestSigner()

	sig, err := signer.SignWithOptions(testSecret, "/accounts", "GET", nil, &SigningOptions{Timestamp: 1446837062.914})
	require.NoError(t, err)

	err = VerifySignature(testSecret, "/accounts", "GET", nil, "1446837063.914", sig.Digest)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignature_BodyTampering(t *testing.T) {
	signer := NewDefaultRequestSigner()
	body := []byte(`{"size":"1"}`)

	sig, err := signer.Sign(testSecret, "/orders", "POST", body)
	require.NoError(t, err)

	err = VerifySignature(testSecret, "/orders", "POST", []byte(`{"size":"2"}`), sig.TimestampString(), sig.Digest)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignature_BadInputs(t *testing.T) {
	err := VerifySignature("!!bad!!", "/orders", "POST", nil, "1", "AAAA")
	assert.ErrorIs(t, err, ErrInvalidCredentialFormat)

	err = VerifySignature(testSecret, "/orders", "POST", nil, "1", "&&&not base64&&&")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSignatureMismatch)
}

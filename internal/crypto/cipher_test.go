package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(1)

	sealed, err := Seal("ghp_secret_token", key)
	require.NoError(t, err)
	assert.True(t, IsSealed(sealed))
	assert.NotContains(t, sealed, "ghp_secret_token")

	opened, err := Open(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret_token", opened)
}

func TestSeal_UsesRandomNonce(t *testing.T) {
	key := testKey(2)

	first, err := Seal("same", key)
	require.NoError(t, err)
	second, err := Seal("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSeal_Errors(t *testing.T) {
	_, err := Seal("", testKey(1))
	assert.Error(t, err)

	_, err = Seal("token", []byte("short"))
	assert.Error(t, err)
}

func TestOpen_WrongKey(t *testing.T) {
	sealed, err := Seal("token", testKey(1))
	require.NoError(t, err)

	_, err = Open(sealed, testKey(9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong passphrase")
}

func TestOpen_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		sealed string
		errMsg string
	}{
		{"not sealed", "ghp_plain", "not sealed"},
		{"bad base64", SealedPrefix + "!!!", "decode base64"},
		{"too short", SealedPrefix + "AAAA", "too short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.sealed, testKey(1))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestIsSealed(t *testing.T) {
	assert.False(t, IsSealed("ghp_token"))
	assert.True(t, IsSealed(SealedPrefix+strings.Repeat("A", 8)))
}

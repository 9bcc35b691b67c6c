package strkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionBytes(t *testing.T) {
	tests := []struct {
		kind    Kind
		version byte
		prefix  byte
		name    string
	}{
		{Ed25519PublicKey, 48, 'G', "ed25519PublicKey"},
		{Ed25519SecretSeed, 144, 'S', "ed25519SecretSeed"},
		{PreAuthTx, 152, 'T', "preAuthTx"},
		{Sha256Hash, 184, 'X', "sha256Hash"},
		{Med25519PublicKey, 96, 'M', "med25519PublicKey"},
		{SignedPayload, 120, 'P', "signedPayload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.version, tt.kind.VersionByte())
			assert.Zero(t, tt.kind.VersionByte()&0x07)
			assert.Equal(t, tt.prefix, tt.kind.Prefix())
			assert.Equal(t, tt.name, tt.kind.String())

			kind, err := KindFromVersionByte(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)

			kind, err = KindFromPrefix(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)

			kind, err = ParseKind(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)

			kind, err = ParseKind(string(tt.prefix))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestKindFromVersionByteRejectsUnknown(t *testing.T) {
	known := map[byte]bool{}
	for _, kind := range Kinds() {
		known[kind.VersionByte()] = true
	}
	for b := 0; b < 256; b++ {
		_, err := KindFromVersionByte(byte(b))
		if known[byte(b)] {
			assert.NoError(t, err, "version byte %d", b)
		} else {
			assert.ErrorIs(t, err, ErrUnknownVersionByte, "version byte %d", b)
		}
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("ED25519PUBLICKEY")
	require.NoError(t, err)
	assert.Equal(t, Ed25519PublicKey, kind)

	_, err = ParseKind("A")
	assert.ErrorIs(t, err, ErrUnknownVersionByte)

	_, err = ParseKind("rsaPublicKey")
	assert.ErrorIs(t, err, ErrUnknownVersionByte)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Len(t, Kinds(), 6)
}

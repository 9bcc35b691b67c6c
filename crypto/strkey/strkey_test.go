// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rawPublicKey = []byte{
		91, 49, 118, 218, 79, 232, 118, 216, 114, 82, 9, 175, 17, 217, 95, 50,
		155, 52, 15, 112, 137, 99, 101, 172, 40, 104, 207, 154, 154, 33, 113, 92,
	}
	encodedPublicKey = "GBNTC5W2J7UHNWDSKIE26EOZL4ZJWNAPOCEWGZNMFBUM7GU2EFYVZNOL"
	encodedSeed      = "SAZ443I6BNR2MD3G27C4EZIEEFMKOPT4SR6IHZDLXPODEHR2GRQVIC7R"
)

// rawEncode builds a strkey from an arbitrary version byte and payload,
// bypassing the registry and length checks.
func rawEncode(version byte, payload []byte) string {
	raw := append([]byte{version}, payload...)
	checksum := Checksum(raw)
	return encoding.EncodeToString(append(raw, checksum[:]...))
}

func TestEncode(t *testing.T) {
	encoded, err := Encode(Ed25519PublicKey, rawPublicKey)
	require.NoError(t, err)
	assert.Equal(t, encodedPublicKey, encoded)
}

func TestDecode(t *testing.T) {
	decoded, err := Decode(Ed25519PublicKey, encodedPublicKey)
	require.NoError(t, err)
	assert.Equal(t, rawPublicKey, decoded)
}

func TestEncodeFixedKinds(t *testing.T) {
	zero := make([]byte, 32)

	tests := []struct {
		kind     Kind
		expected string
	}{
		{PreAuthTx, "TAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABLVU"},
		{Sha256Hash, "XAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAPQN"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			encoded, err := tt.kind.Encode(zero)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, encoded)

			decoded, err := tt.kind.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, zero, decoded)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		min, max := kind.PayloadLength()
		for n := min; n <= max; n++ {
			payload := make([]byte, n)
			for i := range payload {
				payload[i] = byte(i*7 + n)
			}

			encoded, err := Encode(kind, payload)
			require.NoError(t, err, "%s/%d", kind, n)
			assert.Equal(t, kind.Prefix(), encoded[0], "%s/%d", kind, n)
			assert.True(t, IsValid(kind, encoded), "%s/%d", kind, n)

			decoded, err := Decode(kind, encoded)
			require.NoError(t, err, "%s/%d", kind, n)
			assert.Equal(t, payload, decoded, "%s/%d", kind, n)
		}
	}
}

func TestEncodeInvalidPayloadLength(t *testing.T) {
	tests := []struct {
		kind Kind
		n    int
	}{
		{Ed25519PublicKey, 31},
		{Ed25519PublicKey, 33},
		{Ed25519SecretSeed, 0},
		{PreAuthTx, 64},
		{Sha256Hash, 16},
		{Med25519PublicKey, 36},
		{SignedPayload, 35},
		{SignedPayload, 101},
	}
	for _, tt := range tests {
		_, err := Encode(tt.kind, make([]byte, tt.n))
		assert.ErrorIs(t, err, ErrInvalidPayloadLength, "%s/%d", tt.kind, tt.n)
	}
}

func TestDecodeVersionMismatch(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	encoded := MustEncode(Ed25519SecretSeed, seed)

	_, err := Decode(Ed25519PublicKey, encoded)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	_, err = Decode(Ed25519SecretSeed, encodedPublicKey)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	_, err = Decode(Ed25519SecretSeed, encodedSeed)
	assert.NoError(t, err)
}

func TestDecodeUnknownVersionByte(t *testing.T) {
	encoded := rawEncode(1<<3, rawPublicKey)
	_, err := Decode(Ed25519PublicKey, encoded)
	assert.ErrorIs(t, err, ErrUnknownVersionByte)

	encoded = rawEncode(6<<3|1, rawPublicKey)
	_, err = Decode(Ed25519PublicKey, encoded)
	assert.ErrorIs(t, err, ErrUnknownVersionByte)
}

func TestDecodeInvalidPayloadLength(t *testing.T) {
	encoded := rawEncode(Ed25519PublicKey.VersionByte(), rawPublicKey[:30])
	_, err := Decode(Ed25519PublicKey, encoded)
	assert.ErrorIs(t, err, ErrInvalidPayloadLength)
	assert.False(t, IsValid(Ed25519PublicKey, encoded))
}

func TestDecodeChecksumMismatch(t *testing.T) {
	raw := append([]byte{Ed25519PublicKey.VersionByte()}, rawPublicKey...)
	raw = append(raw, 0, 0)
	_, err := Decode(Ed25519PublicKey, encoding.EncodeToString(raw))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeInvalidEncoding(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"lowercase": strings.ToLower(encodedPublicKey),
		"padding":   encodedPublicKey + "========",
		"alphabet":  encodedPublicKey[:55] + "1",
		"length":    encodedPublicKey + "A",
		"too short": "GA",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(Ed25519PublicKey, input)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestDecodeNonCanonical(t *testing.T) {
	// Muxed accounts leave one unused bit in the final character.
	encoded := "MBNTC5W2J7UHNWDSKIE26EOZL4ZJWNAPOCEWGZNMFBUM7GU2EFYVYAAAAAAAAAAE2II3G"
	_, err := Decode(Med25519PublicKey, encoded)
	require.NoError(t, err)

	_, err = Decode(Med25519PublicKey, encoded[:len(encoded)-1]+"H")
	assert.ErrorIs(t, err, ErrNonCanonicalEncoding)

	// Line breaks are skipped by the base32 decoder.
	_, err = Decode(Ed25519PublicKey, encodedPublicKey[:28]+"\r\n"+encodedPublicKey[28:])
	assert.ErrorIs(t, err, ErrNonCanonicalEncoding)
}

func TestDecodeDetectsTampering(t *testing.T) {
	for _, valid := range []string{encodedPublicKey, encodedSeed} {
		kind, err := KindOf(valid)
		require.NoError(t, err)

		for i := 0; i < len(valid); i++ {
			for bit := 0; bit < 8; bit++ {
				tampered := []byte(valid)
				tampered[i] ^= 1 << bit

				_, err := Decode(kind, string(tampered))
				require.Error(t, err, "position %d bit %d", i, bit)
				ok := errors.Is(err, ErrChecksumMismatch) ||
					errors.Is(err, ErrNonCanonicalEncoding) ||
					errors.Is(err, ErrInvalidEncoding)
				assert.True(t, ok, "position %d bit %d: unexpected error %v", i, bit, err)
			}
		}
	}
}

func TestDecodeReturnsCopy(t *testing.T) {
	a, err := Decode(Ed25519PublicKey, encodedPublicKey)
	require.NoError(t, err)
	a[0] ^= 0xff

	b, err := Decode(Ed25519PublicKey, encodedPublicKey)
	require.NoError(t, err)
	assert.Equal(t, rawPublicKey, b)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Ed25519PublicKey, encodedPublicKey))
	assert.True(t, Ed25519SecretSeed.IsValid(encodedSeed))

	assert.False(t, IsValid(Ed25519PublicKey, "GBNTC5W2J7UHNWDSKIE26EOZL4ZJWNAPOCEWGZNMFBUM7GU2EFYVZNOB"))
	assert.False(t, IsValid(Ed25519PublicKey, encodedSeed))
	assert.False(t, IsValid(Ed25519PublicKey, encodedPublicKey[:55]))
	assert.False(t, IsValid(Ed25519PublicKey, ""))
	assert.False(t, IsValid(Med25519PublicKey, encodedPublicKey))
	assert.False(t, IsValid(SignedPayload, encodedPublicKey))
	assert.False(t, IsValid(Kind(99), encodedPublicKey))
}

func TestKindOf(t *testing.T) {
	kind, err := KindOf("GBNTC5W2J7UHNWDSKIE26EOZL4ZJWNAPOCEWGZNMFBUM7GU2EFYVZNOB")
	require.NoError(t, err)
	assert.Equal(t, Ed25519PublicKey, kind)
	assert.Equal(t, "ed25519PublicKey", kind.String())

	kind, err = KindOf(encodedSeed)
	require.NoError(t, err)
	assert.Equal(t, Ed25519SecretSeed, kind)

	kind, err = KindOf("MBNTC5W2J7UHNWDSKIE26EOZL4ZJWNAPOCEWGZNMFBUM7GU2EFYVYAAAAAAAAAAE2II3G")
	require.NoError(t, err)
	assert.Equal(t, Med25519PublicKey, kind)

	_, err = KindOf("G")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = KindOf("gbntc5w2")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = KindOf(rawEncode(1<<3, rawPublicKey))
	assert.ErrorIs(t, err, ErrUnknownVersionByte)
}

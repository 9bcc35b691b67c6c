// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

/*
Package strkey implements the version-tagged, checksummed base32 text form used
for ed25519 keys, seeds, hashes and signers.

# Format

A strkey is the unpadded upper-case RFC 4648 base32 encoding of

	version byte || payload || crc16-xmodem(version byte || payload), little-endian

The version byte determines the kind of payload and therefore the first
character of the text: G for public keys, S for secret seeds, T for
pre-authorized transactions, X for sha256 hashes, M for muxed accounts and P
for signed payload signers.

Decoding is strict. A string is only accepted if re-encoding the decoded bytes
reproduces it exactly, the checksum matches, the version byte is the one the
caller asked for and the payload length fits the kind.
*/
package strkey

import (
	"bytes"
	"encoding/base32"
	"fmt"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode returns the strkey for payload tagged as kind.
func Encode(kind Kind, payload []byte) (string, error) {
	if !kind.valid() {
		return "", fmt.Errorf("%w: kind %d", ErrUnknownVersionByte, uint8(kind))
	}
	if err := checkPayloadLength(kind, len(payload)); err != nil {
		return "", err
	}

	raw := make([]byte, 0, 1+len(payload)+ChecksumLength)
	raw = append(raw, kind.VersionByte())
	raw = append(raw, payload...)
	checksum := Checksum(raw)
	raw = append(raw, checksum[:]...)

	return encoding.EncodeToString(raw), nil
}

// MustEncode is like Encode but panics on error. Intended for constants and tests.
func MustEncode(kind Kind, payload []byte) string {
	s, err := Encode(kind, payload)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode verifies text as a strkey of the given kind and returns its payload.
func Decode(kind Kind, text string) ([]byte, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownVersionByte, uint8(kind))
	}

	// Unpadded base32 can only end on these quantum boundaries.
	switch len(text) % 8 {
	case 1, 3, 6:
		return nil, fmt.Errorf("%w: impossible length %d", ErrInvalidEncoding, len(text))
	}

	raw, err := encoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) < 1+ChecksumLength {
		return nil, fmt.Errorf("%w: %d decoded bytes is too short", ErrInvalidEncoding, len(raw))
	}

	// Rejects alternative spellings of the same bytes, e.g. non-zero trailing
	// bits in the final character or embedded line breaks.
	if encoding.EncodeToString(raw) != text {
		return nil, ErrNonCanonicalEncoding
	}

	body := raw[:len(raw)-ChecksumLength]
	expected := Checksum(body)
	if !bytes.Equal(expected[:], raw[len(raw)-ChecksumLength:]) {
		return nil, ErrChecksumMismatch
	}

	actual, err := KindFromVersionByte(body[0])
	if err != nil {
		return nil, err
	}
	if actual != kind {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrVersionMismatch, kind, actual)
	}

	payload := body[1:]
	if err := checkPayloadLength(kind, len(payload)); err != nil {
		return nil, err
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// IsValid reports whether text is a well-formed strkey of the given kind.
func IsValid(kind Kind, text string) bool {
	if !kind.valid() {
		return false
	}
	info := kinds[kind]
	if len(text) < info.minText || len(text) > info.maxText {
		return false
	}
	_, err := Decode(kind, text)
	return err == nil
}

// KindOf returns the kind announced by the version byte of text. Only the
// leading base32 block is decoded, so neither the checksum nor the payload are
// verified; follow up with Decode before trusting the contents.
func KindOf(text string) (Kind, error) {
	if len(text) < 2 {
		return 0, fmt.Errorf("%w: strkey too short", ErrInvalidEncoding)
	}
	head := text
	if len(head) > 8 {
		head = head[:8]
	}
	raw, err := encoding.DecodeString(head)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: strkey too short", ErrInvalidEncoding)
	}
	return KindFromVersionByte(raw[0])
}

// Encode is shorthand for Encode(k, payload).
func (k Kind) Encode(payload []byte) (string, error) {
	return Encode(k, payload)
}

// Decode is shorthand for Decode(k, text).
func (k Kind) Decode(text string) ([]byte, error) {
	return Decode(k, text)
}

// IsValid is shorthand for IsValid(k, text).
func (k Kind) IsValid(text string) bool {
	return IsValid(k, text)
}

func checkPayloadLength(kind Kind, n int) error {
	info := kinds[kind]
	if n < info.minPayload || n > info.maxPayload {
		if info.minPayload == info.maxPayload {
			return fmt.Errorf("%w: %s requires %d bytes, got %d", ErrInvalidPayloadLength, kind, info.minPayload, n)
		}
		return fmt.Errorf("%w: %s requires %d to %d bytes, got %d", ErrInvalidPayloadLength, kind, info.minPayload, info.maxPayload, n)
	}
	return nil
}

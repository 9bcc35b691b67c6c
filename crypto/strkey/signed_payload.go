// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// PayloadSigner is a signer that is satisfied by an ed25519 signature of
// Payload made with the Ed25519 key.
type PayloadSigner struct {
	Ed25519 [Ed25519Length]byte
	Payload []byte
}

// EncodeSignedPayload returns the P-address of sp. The payload is written with
// a big-endian uint32 length prefix and zero padded to a 4 byte boundary.
func EncodeSignedPayload(sp PayloadSigner) (string, error) {
	if len(sp.Payload) > MaxSignedPayloadLength {
		return "", fmt.Errorf("%w: payload is %d bytes, at most %d allowed",
			ErrInvalidSignedPayload, len(sp.Payload), MaxSignedPayloadLength)
	}
	raw := make([]byte, signedPayloadHeaderLength+padded(len(sp.Payload)))
	copy(raw, sp.Ed25519[:])
	binary.BigEndian.PutUint32(raw[Ed25519Length:], uint32(len(sp.Payload)))
	copy(raw[signedPayloadHeaderLength:], sp.Payload)
	return Encode(SignedPayload, raw)
}

// DecodeSignedPayload parses a P-address. The declared length must match the
// remaining bytes exactly and any padding must be zero.
func DecodeSignedPayload(text string) (PayloadSigner, error) {
	raw, err := Decode(SignedPayload, text)
	if err != nil {
		return PayloadSigner{}, fmt.Errorf("%w: %w", ErrInvalidSignedPayload, err)
	}

	n := binary.BigEndian.Uint32(raw[Ed25519Length:signedPayloadHeaderLength])
	if n > MaxSignedPayloadLength {
		return PayloadSigner{}, fmt.Errorf("%w: declared length %d exceeds %d",
			ErrInvalidSignedPayload, n, MaxSignedPayloadLength)
	}
	rest := raw[signedPayloadHeaderLength:]
	if len(rest) != padded(int(n)) {
		return PayloadSigner{}, fmt.Errorf("%w: declared length %d does not match %d remaining bytes",
			ErrInvalidSignedPayload, n, len(rest))
	}
	if !isZero(rest[n:]) {
		return PayloadSigner{}, fmt.Errorf("%w: non-zero padding", ErrInvalidSignedPayload)
	}

	sp := PayloadSigner{Payload: bytes.Clone(rest[:n])}
	copy(sp.Ed25519[:], raw[:Ed25519Length])
	return sp, nil
}

// Signer returns the G-address of the key expected to sign the payload.
func (sp PayloadSigner) Signer() string {
	return MustEncode(Ed25519PublicKey, sp.Ed25519[:])
}

func padded(n int) int {
	return (n + 3) &^ 3
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

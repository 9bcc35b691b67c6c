// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import (
	"encoding/binary"
	"fmt"
)

// MuxedAccount is an ed25519 account key multiplexed by a 64-bit id.
type MuxedAccount struct {
	Ed25519 [Ed25519Length]byte
	ID      uint64
}

// Address returns the G-address of the underlying account.
func (m MuxedAccount) Address() string {
	return MustEncode(Ed25519PublicKey, m.Ed25519[:])
}

// String returns the M-address.
func (m MuxedAccount) String() string {
	return EncodeMuxedAccount(m)
}

// EncodeMuxedAccount returns the M-address of m. The id is appended big-endian.
func EncodeMuxedAccount(m MuxedAccount) string {
	payload := make([]byte, Ed25519Length+MuxedIDLength)
	copy(payload, m.Ed25519[:])
	binary.BigEndian.PutUint64(payload[Ed25519Length:], m.ID)
	return MustEncode(Med25519PublicKey, payload)
}

// DecodeMuxedAccount parses an M-address.
func DecodeMuxedAccount(text string) (MuxedAccount, error) {
	payload, err := Decode(Med25519PublicKey, text)
	if err != nil {
		return MuxedAccount{}, fmt.Errorf("%w: %w", ErrInvalidMuxedAccount, err)
	}
	var m MuxedAccount
	copy(m.Ed25519[:], payload[:Ed25519Length])
	m.ID = binary.BigEndian.Uint64(payload[Ed25519Length:])
	return m, nil
}

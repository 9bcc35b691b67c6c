// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import (
	"fmt"
	"strings"
)

// Kind identifies the type of key material carried by a strkey.
type Kind uint8

const (
	Ed25519PublicKey Kind = iota
	Ed25519SecretSeed
	PreAuthTx
	Sha256Hash
	Med25519PublicKey
	SignedPayload
)

const (
	// Ed25519Length is the size of every ed25519 key, seed and hash carried in a strkey.
	Ed25519Length = 32
	// MuxedIDLength is the size of the multiplexing id appended to a muxed account.
	MuxedIDLength = 8
	// MaxSignedPayloadLength bounds the inner payload of a signed payload signer.
	MaxSignedPayloadLength = 64

	signedPayloadHeaderLength = Ed25519Length + 4
)

type kindInfo struct {
	name    string
	prefix  byte
	version byte
	// payload bounds in bytes, inclusive
	minPayload int
	maxPayload int
	// encoded text bounds in characters, inclusive
	minText int
	maxText int
}

var kinds = [...]kindInfo{
	Ed25519PublicKey: {
		name: "ed25519PublicKey", prefix: 'G', version: 6 << 3,
		minPayload: Ed25519Length, maxPayload: Ed25519Length,
		minText: 56, maxText: 56,
	},
	Ed25519SecretSeed: {
		name: "ed25519SecretSeed", prefix: 'S', version: 18 << 3,
		minPayload: Ed25519Length, maxPayload: Ed25519Length,
		minText: 56, maxText: 56,
	},
	PreAuthTx: {
		name: "preAuthTx", prefix: 'T', version: 19 << 3,
		minPayload: Ed25519Length, maxPayload: Ed25519Length,
		minText: 56, maxText: 56,
	},
	Sha256Hash: {
		name: "sha256Hash", prefix: 'X', version: 23 << 3,
		minPayload: Ed25519Length, maxPayload: Ed25519Length,
		minText: 56, maxText: 56,
	},
	Med25519PublicKey: {
		name: "med25519PublicKey", prefix: 'M', version: 12 << 3,
		minPayload: Ed25519Length + MuxedIDLength, maxPayload: Ed25519Length + MuxedIDLength,
		minText: 69, maxText: 69,
	},
	SignedPayload: {
		name: "signedPayload", prefix: 'P', version: 15 << 3,
		minPayload: signedPayloadHeaderLength, maxPayload: signedPayloadHeaderLength + MaxSignedPayloadLength,
		minText: 56, maxText: 165,
	},
}

// Kinds lists every supported kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool {
	return int(k) < len(kinds)
}

func (k Kind) info() kindInfo {
	if !k.valid() {
		panic(fmt.Sprintf("strkey: unknown kind %d", uint8(k)))
	}
	return kinds[k]
}

// VersionByte returns the tag byte written in front of the payload.
func (k Kind) VersionByte() byte {
	return k.info().version
}

// Prefix returns the leading character of every strkey of this kind.
func (k Kind) Prefix() byte {
	return k.info().prefix
}

// PayloadLength returns the inclusive payload size bounds for the kind.
func (k Kind) PayloadLength() (min, max int) {
	info := k.info()
	return info.minPayload, info.maxPayload
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// KindFromVersionByte maps a decoded tag byte back to its kind.
func KindFromVersionByte(b byte) (Kind, error) {
	// Only the top five bits are significant.
	if b&0x07 == 0 {
		for i := range kinds {
			if kinds[i].version == b {
				return Kind(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownVersionByte, b)
}

// KindFromPrefix maps a strkey's first character to its kind.
func KindFromPrefix(c byte) (Kind, error) {
	for i := range kinds {
		if kinds[i].prefix == c {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: prefix %q", ErrUnknownVersionByte, c)
}

// ParseKind accepts either a kind name ("ed25519PublicKey") or its single
// letter prefix ("G"). Names match case-insensitively.
func ParseKind(s string) (Kind, error) {
	if len(s) == 1 {
		return KindFromPrefix(s[0])
	}
	for i := range kinds {
		if strings.EqualFold(kinds[i].name, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersionByte, s)
}

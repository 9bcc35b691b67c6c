// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import "errors"

var (
	ErrInvalidEncoding      = errors.New("invalid base32 encoding")
	ErrNonCanonicalEncoding = errors.New("non-canonical strkey encoding")
	ErrUnknownVersionByte   = errors.New("unknown version byte")
	ErrVersionMismatch      = errors.New("version byte does not match expected kind")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrInvalidSignedPayload = errors.New("invalid signed payload")
	ErrInvalidMuxedAccount  = errors.New("invalid muxed account")
)

// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package stellar

import (
	"encoding/base64"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/crypto"
	"github.com/snowfork/strkey/crypto/ed25519"
	"github.com/snowfork/strkey/crypto/strkey"
)

var ErrBadSignature = errors.New("signature verification failed")

// DecoratedSignature pairs a signature with a short hint identifying the key
// that produced it.
type DecoratedSignature struct {
	Hint      [4]byte
	Signature []byte
}

func (d DecoratedSignature) Base64() string {
	return base64.StdEncoding.EncodeToString(d.Signature)
}

// SignPayload signs payload and decorates the result with the signer's hint.
func SignPayload(signer crypto.Signer, payload []byte) (DecoratedSignature, error) {
	sig, err := signer.Sign(payload)
	if err != nil {
		return DecoratedSignature{}, err
	}
	return DecoratedSignature{Hint: signer.Hint(), Signature: sig}, nil
}

// SignTransaction signs the network-bound hash of an encoded transaction.
func SignTransaction(signer crypto.Signer, network NetworkID, tx []byte) (DecoratedSignature, error) {
	hash := network.TransactionHash(tx)

	log.WithFields(log.Fields{
		"signer":  signer.Address(),
		"network": network.Hex(),
		"txSize":  len(tx),
	}).Debug("Signing transaction")

	return SignPayload(signer, hash[:])
}

// SignForPayloadSigner signs payload on behalf of a signed payload signer.
// The hint is the key hint XORed with the last four payload bytes, the
// payload being right-padded with zeros when shorter than four bytes.
func SignForPayloadSigner(signer crypto.Signer, payload []byte) (DecoratedSignature, error) {
	if len(payload) > strkey.MaxSignedPayloadLength {
		return DecoratedSignature{}, fmt.Errorf("%w: payload is %d bytes", strkey.ErrInvalidSignedPayload, len(payload))
	}

	sig, err := SignPayload(signer, payload)
	if err != nil {
		return DecoratedSignature{}, err
	}

	var tail [4]byte
	if len(payload) >= 4 {
		copy(tail[:], payload[len(payload)-4:])
	} else {
		copy(tail[:], payload)
	}
	for i := range sig.Hint {
		sig.Hint[i] ^= tail[i]
	}
	return sig, nil
}

// VerifyPayload checks sig against payload for the G... address.
func VerifyPayload(address string, payload, sig []byte) error {
	kp, err := ed25519.FromPublicKey(address)
	if err != nil {
		return err
	}
	if !kp.Verify(payload, sig) {
		return ErrBadSignature
	}
	return nil
}

// VerifyPayloadSigner checks sig against the signer and payload carried by a
// P... strkey.
func VerifyPayloadSigner(text string, sig []byte) error {
	ps, err := strkey.DecodeSignedPayload(text)
	if err != nil {
		return err
	}
	kp, err := ed25519.FromRawPublicKey(ps.Ed25519[:])
	if err != nil {
		return err
	}
	if !kp.Verify(ps.Payload, sig) {
		return ErrBadSignature
	}
	return nil
}

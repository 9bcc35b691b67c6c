// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package stellar

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	PublicNetworkPassphrase = "Public Global Stellar Network ; September 2015"
	TestNetworkPassphrase   = "Test SDF Network ; September 2015"
)

// Envelope type tag for transaction signature payloads.
const envelopeTypeTx uint32 = 2

type NetworkID [sha256.Size]byte

// NewNetworkID derives the network id from its passphrase.
func NewNetworkID(passphrase string) NetworkID {
	return sha256.Sum256([]byte(passphrase))
}

func (id NetworkID) Hex() string {
	return hexutil.Encode(id[:])
}

// TransactionHash returns the hash a signer commits to for an encoded
// transaction on this network.
func (id NetworkID) TransactionHash(tx []byte) [sha256.Size]byte {
	var tag [4]byte
	binary.BigEndian.PutUint32(tag[:], envelopeTypeTx)

	h := sha256.New()
	h.Write(id[:])
	h.Write(tag[:])
	h.Write(tx)

	var out [sha256.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

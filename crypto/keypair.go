// Copyright 2020 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

/*
Package crypto is used to provide functionality to keypair types.
The current supported type is ed25519, with keys published as strkeys.

# Keypairs

The keypair interface is used to bridge key storage and the string forms.
Every Keypair has both a Encode and Decode function that allows writing and reading raw key material.
There is also the Address and PublicKey functions that allow access to public facing fields.

# Signers

A Signer is a Keypair able to produce signatures. Callers that assemble
transactions elsewhere only need Sign and Hint; the textual key format stays
behind this interface.

# Types

A general overview on the strkey format can be found here: https://stellar.org/protocol/sep-23
*/
package crypto

type KeyType = string

const Ed25519Type KeyType = "ed25519"

type Keypair interface {
	// Encode is used to write the key to a file
	Encode() []byte
	// Decode is used to retrieve a key from a file
	Decode([]byte) error
	// Address provides the address for the keypair
	Address() string
	// PublicKey returns the keypair's public key an encoded a string
	PublicKey() string
}

type Signer interface {
	Keypair
	// CanSign reports whether secret material is present
	CanSign() bool
	// Sign returns a signature over msg
	Sign(msg []byte) ([]byte, error)
	// Verify checks sig against msg and the public key
	Verify(msg, sig []byte) bool
	// Hint returns the last four bytes of the public key
	Hint() [4]byte
}

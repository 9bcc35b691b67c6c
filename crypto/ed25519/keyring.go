// Copyright 2020 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

// Keypairs for use in tests

func Alice() *Keypair {
	return FromRawSeed(padWithZeros([]byte("Alice")))
}

func Bob() *Keypair {
	return FromRawSeed(padWithZeros([]byte("Bob")))
}

// padWithZeros left-pads key with 0 bytes to a full seed
func padWithZeros(key []byte) [SeedLength]byte {
	var res [SeedLength]byte
	copy(res[SeedLength-len(key):], key)
	return res
}

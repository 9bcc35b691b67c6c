// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package stellar

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/crypto/ed25519"
)

// ResolvePrivateKey loads a signing keypair from seed or, when seed is empty,
// from the contents of seedFile. Both forms accept an S... strkey or a
// 0x-prefixed hex encoding of the raw 32 byte seed.
func ResolvePrivateKey(seed, seedFile string) (*ed25519.Keypair, error) {
	var cleanedSeed string

	if seed == "" {
		if seedFile == "" {
			return nil, fmt.Errorf("secret seed not supplied")
		}
		content, err := os.ReadFile(seedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load secret seed: %w", err)
		}
		cleanedSeed = strings.TrimSpace(string(content))
		log.WithField("file", seedFile).Debug("Loaded secret seed from file")
	} else {
		cleanedSeed = strings.TrimSpace(seed)
	}

	keypair, err := parseSeed(cleanedSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secret seed: %w", err)
	}

	log.WithField("address", keypair.Address()).Debug("Resolved signing key")

	return keypair, nil
}

func parseSeed(seed string) (*ed25519.Keypair, error) {
	if !strings.HasPrefix(seed, "0x") {
		return ed25519.FromSecretSeed(seed)
	}

	raw, err := hexutil.Decode(seed)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519.SeedLength {
		return nil, fmt.Errorf("raw seed must be %d bytes, got %d", ed25519.SeedLength, len(raw))
	}

	var buf [ed25519.SeedLength]byte
	copy(buf[:], raw)
	return ed25519.FromRawSeed(buf), nil
}

// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"bytes"
	goed25519 "crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/snowfork/strkey/crypto"
	"github.com/snowfork/strkey/crypto/strkey"
)

var _ crypto.Signer = &Keypair{}

const (
	SeedLength      = goed25519.SeedSize
	PublicKeyLength = goed25519.PublicKeySize
	SignatureLength = goed25519.SignatureSize
)

var (
	ErrNoSecretKey        = errors.New("keypair has no secret key")
	ErrAlreadyInitialized = errors.New("keypair already initialized")
)

// Keypair is an ed25519 public key with optional secret material. A Keypair
// built from a public key alone can verify but not sign.
type Keypair struct {
	public goed25519.PublicKey
	// seed || public, nil for public-only keypairs
	private goed25519.PrivateKey

	secretOnce sync.Once
	secret     string
}

// FromSecretSeed builds a signing keypair from an S... strkey.
func FromSecretSeed(seed string) (*Keypair, error) {
	raw, err := strkey.Decode(strkey.Ed25519SecretSeed, seed)
	if err != nil {
		return nil, fmt.Errorf("decode secret seed: %w", err)
	}
	return fromSeed(raw), nil
}

// FromPublicKey builds a verify-only keypair from a G... strkey.
func FromPublicKey(address string) (*Keypair, error) {
	raw, err := strkey.Decode(strkey.Ed25519PublicKey, address)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	return &Keypair{public: raw}, nil
}

// FromRawSeed builds a signing keypair from raw seed bytes.
func FromRawSeed(seed [SeedLength]byte) *Keypair {
	return fromSeed(seed[:])
}

// FromRawPublicKey builds a verify-only keypair from raw public key bytes.
func FromRawPublicKey(pub []byte) (*Keypair, error) {
	if len(pub) != PublicKeyLength {
		return nil, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			strkey.ErrInvalidPayloadLength, PublicKeyLength, len(pub))
	}
	return &Keypair{public: bytes.Clone(pub)}, nil
}

// FromPrivateKey adopts a crypto/ed25519 private key.
func FromPrivateKey(priv goed25519.PrivateKey) (*Keypair, error) {
	if len(priv) != goed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: ed25519 private key must be %d bytes, got %d",
			strkey.ErrInvalidPayloadLength, goed25519.PrivateKeySize, len(priv))
	}
	kp := fromSeed(priv.Seed())
	if !bytes.Equal(kp.public, priv[SeedLength:]) {
		return nil, errors.New("ed25519 private key does not match its public half")
	}
	return kp, nil
}

// Random generates a signing keypair from 32 bytes of crypto/rand.
func Random() (*Keypair, error) {
	return randomFrom(rand.Reader)
}

func randomFrom(r io.Reader) (*Keypair, error) {
	seed := make([]byte, SeedLength)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return fromSeed(seed), nil
}

// Parse accepts either a secret seed or a public key strkey.
func Parse(s string) (*Keypair, error) {
	kind, err := strkey.KindOf(s)
	if err != nil {
		return nil, err
	}
	switch kind {
	case strkey.Ed25519SecretSeed:
		return FromSecretSeed(s)
	case strkey.Ed25519PublicKey:
		return FromPublicKey(s)
	default:
		return nil, fmt.Errorf("%w: cannot build a keypair from %s", strkey.ErrVersionMismatch, kind)
	}
}

func fromSeed(seed []byte) *Keypair {
	private := goed25519.NewKeyFromSeed(seed)
	return &Keypair{
		public:  private.Public().(goed25519.PublicKey),
		private: private,
	}
}

// Encode dumps the keypair as its strkey, the seed if present and the public
// key otherwise.
func (kp *Keypair) Encode() []byte {
	if kp.CanSign() {
		seed, _ := kp.SecretSeed()
		return []byte(seed)
	}
	return []byte(kp.PublicKey())
}

// Decode initializes an empty keypair from the output of Encode
func (kp *Keypair) Decode(in []byte) error {
	if kp.public != nil {
		return ErrAlreadyInitialized
	}
	res, err := Parse(string(bytes.TrimSpace(in)))
	if err != nil {
		return err
	}
	kp.public = res.public
	kp.private = res.private
	return nil
}

// Address returns the G... strkey of the public key
func (kp *Keypair) Address() string {
	return kp.PublicKey()
}

// PublicKey returns the public key encoded as a strkey
func (kp *Keypair) PublicKey() string {
	if len(kp.public) != PublicKeyLength {
		return ""
	}
	return strkey.MustEncode(strkey.Ed25519PublicKey, kp.public)
}

// RawPublicKey returns a copy of the public key bytes.
func (kp *Keypair) RawPublicKey() goed25519.PublicKey {
	return bytes.Clone(kp.public)
}

// SecretSeed returns the S... strkey of the seed.
func (kp *Keypair) SecretSeed() (string, error) {
	if !kp.CanSign() {
		return "", ErrNoSecretKey
	}
	kp.secretOnce.Do(func() {
		kp.secret = strkey.MustEncode(strkey.Ed25519SecretSeed, kp.private.Seed())
	})
	return kp.secret, nil
}

// RawSeed returns a copy of the seed bytes.
func (kp *Keypair) RawSeed() ([]byte, error) {
	if !kp.CanSign() {
		return nil, ErrNoSecretKey
	}
	return kp.private.Seed(), nil
}

func (kp *Keypair) CanSign() bool {
	return len(kp.private) == goed25519.PrivateKeySize
}

// Sign returns the deterministic ed25519 signature of msg.
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	if !kp.CanSign() {
		return nil, ErrNoSecretKey
	}
	return goed25519.Sign(kp.private, msg), nil
}

// Verify reports whether sig is a valid signature of msg by this key.
func (kp *Keypair) Verify(msg, sig []byte) bool {
	if len(sig) != SignatureLength || len(kp.public) != PublicKeyLength {
		return false
	}
	return goed25519.Verify(kp.public, msg, sig)
}

func (kp *Keypair) Hint() [4]byte {
	var hint [4]byte
	if len(kp.public) == PublicKeyLength {
		copy(hint[:], kp.public[PublicKeyLength-4:])
	}
	return hint
}

// Equal compares public keys and signing capability.
func (kp *Keypair) Equal(other *Keypair) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(kp.public, other.public) && bytes.Equal(kp.private, other.private)
}

func (kp *Keypair) String() string {
	return kp.Address()
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	KeyTypeED25519 uint8 = 0

	ed25519Prefix = "ed25519:"
)

// PublicKey is laid out the way NEAR serializes it: a key type tag
// followed by the raw key bytes.
type PublicKey struct {
	KeyType uint8
	Data    [ed25519.PublicKeySize]byte
}

func (p PublicKey) String() string {
	return ed25519Prefix + base58.Encode(p.Data[:])
}

func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := decodeKeyString(s)
	if err != nil {
		return PublicKey{}, err
	}
	if len(raw) != ed25519.PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: public key has %d bytes", ErrInvalidKey, len(raw))
	}
	pk := PublicKey{KeyType: KeyTypeED25519}
	copy(pk.Data[:], raw)
	return pk, nil
}

type Signature struct {
	KeyType uint8
	Data    [ed25519.SignatureSize]byte
}

func (s Signature) String() string {
	return ed25519Prefix + base58.Encode(s.Data[:])
}

type KeyPair struct {
	privateKey ed25519.PrivateKey
	publicKey  PublicKey
}

func GenerateKeyPair() (*KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return newKeyPair(priv), nil
}

func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed has %d bytes", ErrInvalidKey, len(seed))
	}
	return newKeyPair(ed25519.NewKeyFromSeed(seed)), nil
}

// ParseKeyPair decodes an "ed25519:<base58>" secret key as written by
// near-cli. Both the 64 byte seed|public form and a bare 32 byte seed are
// accepted.
func ParseKeyPair(secret string) (*KeyPair, error) {
	raw, err := decodeKeyString(secret)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return NewKeyPairFromSeed(raw)
	case ed25519.PrivateKeySize:
		kp := newKeyPair(ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize]))
		if !bytes.Equal(kp.publicKey.Data[:], raw[ed25519.SeedSize:]) {
			return nil, ErrKeyMismatch
		}
		return kp, nil
	}
	return nil, fmt.Errorf("%w: secret key has %d bytes", ErrInvalidKey, len(raw))
}

func newKeyPair(priv ed25519.PrivateKey) *KeyPair {
	kp := &KeyPair{privateKey: priv}
	kp.publicKey.KeyType = KeyTypeED25519
	copy(kp.publicKey.Data[:], priv.Public().(ed25519.PublicKey))
	return kp
}

func (k *KeyPair) PublicKey() PublicKey {
	return k.publicKey
}

func (k *KeyPair) Sign(msg []byte) Signature {
	sig := Signature{KeyType: KeyTypeED25519}
	copy(sig.Data[:], ed25519.Sign(k.privateKey, msg))
	return sig
}

// String returns the secret key in near-cli format.
func (k *KeyPair) String() string {
	return ed25519Prefix + base58.Encode(k.privateKey)
}

func Verify(pk PublicKey, msg []byte, sig Signature) bool {
	return ed25519.Verify(pk.Data[:], msg, sig.Data[:])
}

func decodeKeyString(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if keyType, _, found := strings.Cut(s, ":"); found && keyType+":" != ed25519Prefix {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKeyType, keyType)
	}
	encoded := strings.TrimPrefix(s, ed25519Prefix)
	raw := base58.Decode(encoded)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: not base58 encoded", ErrInvalidKey)
	}
	return raw, nil
}

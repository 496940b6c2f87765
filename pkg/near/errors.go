// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidGas          = errors.New("invalid gas amount")
	ErrInvalidKey          = errors.New("invalid key")
	ErrUnsupportedKeyType  = errors.New("unsupported key type, only ed25519 keys are supported")
	ErrKeyMismatch         = errors.New("public key does not match private key")
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrInvalidHash         = errors.New("invalid hash")
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrQuery               = errors.New("query failed")
	ErrNoActions           = errors.New("transaction has no actions")
)

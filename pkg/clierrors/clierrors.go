// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import "errors"

var (
	ErrNoSignerAccount  = errors.New("no signer account: pass --account-id or set it with 'tenk config set account-id <account>'")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidFormat    = errors.New("invalid output format, expected json or yaml")
	ErrConfigValueUnset = errors.New("configuration value is not set")
)

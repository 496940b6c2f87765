// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

// ConfigKeys lists the keys accepted by `tenk config`.
var ConfigKeys = []string{
	ConfigAccountIDKey,
	ConfigWasmPathKey,
	ConfigNodeURLKey,
	ConfigCredentialsDirKey,
}

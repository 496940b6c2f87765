// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	BaseDirName = ".tenk-cli"
	LogDir      = "logs"
	LogName     = "tenk.log"
	ConfigFile  = "cli.json"
	EnvPrefix   = "TENK"

	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	UserOnlyWriteReadPerms = 0o600

	MaxLogFileSize   = 4 // MB
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // days, 0 keeps everything

	// near-cli keeps one json file per account under <dir>/<network>/
	CredentialsDirName = ".near-credentials"

	DefaultWasmPath = "target/wasm32-unknown-unknown/release/tenk.wasm"

	DefaultRPCTimeout = 2 * time.Minute
)

// config keys
const (
	ConfigAccountIDKey      = "account-id"
	ConfigWasmPathKey       = "wasm-path"
	ConfigNodeURLKey        = "node-url"
	ConfigCredentialsDirKey = "credentials-dir"
)

// NEAR network constants
const (
	TestnetSuffix = "testnet"

	MainnetRPCEndpoint = "https://rpc.mainnet.near.org"
	TestnetRPCEndpoint = "https://rpc.testnet.near.org"

	MainnetExplorerURL = "https://explorer.near.org"
	TestnetExplorerURL = "https://explorer.testnet.near.org"

	// code hash reported by view_account for accounts without a contract
	EmptyCodeHash = "11111111111111111111111111111111"
)

// tenk contract constants
const (
	InitMethod = "new_default_meta"
	InitGas    = "50Tgas"

	CollectionSize = 120
)

const (
	DryRunFormatJSON = "json"
	DryRunFormatYAML = "yaml"
)

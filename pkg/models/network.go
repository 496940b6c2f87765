// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"strings"

	"github.com/ava-labs/tenk-cli/pkg/constants"
)

type Network int64

const (
	Undefined Network = iota
	Mainnet
	Testnet
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "Mainnet"
	case Testnet:
		return "Testnet"
	}
	return "Unknown Network"
}

// ID is the network id used by near-cli, e.g. for credential directories.
func (n Network) ID() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	}
	return ""
}

func NetworkFromString(s string) Network {
	switch strings.ToLower(s) {
	case "mainnet":
		return Mainnet
	case "testnet":
		return Testnet
	}
	return Undefined
}

// NetworkFromAccount classifies an account by its suffix. Anything not ending
// in "testnet" is treated as mainnet.
func NetworkFromAccount(accountID string) Network {
	if strings.HasSuffix(accountID, constants.TestnetSuffix) {
		return Testnet
	}
	return Mainnet
}

func (n Network) IsTestnet() bool {
	return n == Testnet
}

func (n Network) Endpoint() string {
	if n.IsTestnet() {
		return constants.TestnetRPCEndpoint
	}
	return constants.MainnetRPCEndpoint
}

func (n Network) ExplorerURL() string {
	if n.IsTestnet() {
		return constants.TestnetExplorerURL
	}
	return constants.MainnetExplorerURL
}

func (n Network) ExplorerTxURL(txID string) string {
	return fmt.Sprintf("%s/transactions/%s", n.ExplorerURL(), txID)
}

func (n Network) ExplorerAccountURL(accountID string) string {
	return fmt.Sprintf("%s/accounts/%s", n.ExplorerURL(), accountID)
}

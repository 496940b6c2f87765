// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	_ "embed"
	"encoding/base64"
	"errors"
)

const (
	collectionURI    = "https://bafybeihnm54oute7a6ovuieegx6p5ukbsgqbdjltudhverb7ifcxcrypbu.ipfs.dweb.link"
	collectionName   = "World of the Abyss (WOTA)"
	collectionSymbol = "wotaverse"
)

//go:embed icon.svg
var iconSVG []byte

var errEmptyMetadataField = errors.New("metadata name and symbol are required")

// Metadata describes the collection. It is never modified at runtime.
type Metadata struct {
	URI    string `json:"uri" yaml:"uri"`
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Icon   string `json:"icon" yaml:"icon"`
}

func DefaultMetadata() Metadata {
	return Metadata{
		URI:    collectionURI,
		Name:   collectionName,
		Symbol: collectionSymbol,
		Icon:   "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(iconSVG),
	}
}

func (m Metadata) Validate() error {
	if m.Name == "" || m.Symbol == "" {
		return errEmptyMetadataField
	}
	return nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestNewInitArgs(t *testing.T) {
	require := require.New(t)

	args, err := NewInitArgs("alice.near", models.Mainnet, testNow)
	require.NoError(err)
	require.Equal("alice.near", args.OwnerID)
	require.Equal(uint32(120), args.Size)
	require.Equal(DefaultMetadata(), args.Metadata)
	require.Equal(DefaultSale(), args.Sale)

	args, err = NewInitArgs("bob.testnet", models.Testnet, testNow)
	require.NoError(err)
	require.Nil(args.Sale.InitialRoyalties)
	require.Equal(uint64(testNow.UnixMilli()), *args.Sale.PublicSaleStart)

	_, err = NewInitArgs("", models.Mainnet, testNow)
	require.Error(err)
}

func TestInitArgsJSON(t *testing.T) {
	require := require.New(t)

	args, err := NewInitArgs("alice.near", models.Mainnet, testNow)
	require.NoError(err)
	b, err := args.JSON()
	require.NoError(err)

	var decoded struct {
		OwnerID  string `json:"owner_id"`
		Size     uint32 `json:"size"`
		Metadata struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
			Icon   string `json:"icon"`
		} `json:"metadata"`
		Sale struct {
			Price            string     `json:"price"`
			PublicSaleStart  uint64     `json:"public_sale_start"`
			InitialRoyalties *Royalties `json:"initial_royalties"`
			Royalties        *Royalties `json:"royalties"`
		} `json:"sale"`
	}
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal("alice.near", decoded.OwnerID)
	require.Equal(uint32(120), decoded.Size)
	require.Equal("World of the Abyss (WOTA)", decoded.Metadata.Name)
	require.Equal("wotaverse", decoded.Metadata.Symbol)
	require.True(strings.HasPrefix(decoded.Metadata.Icon, "data:image/svg+xml"))
	require.Equal(uint64(1651082400000), decoded.Sale.PublicSaleStart)
	require.Equal(uint32(10_000), decoded.Sale.InitialRoyalties.Percent)
	require.Equal(uint32(1_000), decoded.Sale.Royalties.Percent)
}

func TestInitArgsValidate(t *testing.T) {
	args, err := NewInitArgs("alice.near", models.Mainnet, testNow)
	require.NoError(t, err)

	zero := args
	zero.Size = 0
	require.ErrorIs(t, zero.Validate(), ErrZeroSize)

	badOwner := args
	badOwner.OwnerID = "Alice!"
	require.Error(t, badOwner.Validate())

	noName := args
	noName.Metadata.Name = ""
	require.Error(t, noName.Validate())
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 3, 12, 30, 0, 0, time.UTC)

func TestDefaultSale(t *testing.T) {
	require := require.New(t)

	sale := DefaultSale()
	require.Equal("5000000000000000000000000", sale.Price)
	require.Equal(uint32(3), *sale.Allowance)
	require.Equal(uint64(1651082400000), *sale.PublicSaleStart)

	require.NotNil(sale.InitialRoyalties)
	require.Equal(uint32(10_000), sale.InitialRoyalties.Percent)
	require.Equal(uint32(2_500), sale.InitialRoyalties.Accounts["tenk.sputnik-dao.near"])
	require.Equal(uint32(7_500), sale.InitialRoyalties.Accounts["project.sputnik-dao.near"])

	require.NotNil(sale.Royalties)
	require.Equal(uint32(1_000), sale.Royalties.Percent)
	require.Equal(sale.InitialRoyalties.Accounts, sale.Royalties.Accounts)

	require.Nil(sale.PresaleStart)
	require.Nil(sale.PresalePrice)
	require.Nil(sale.MintRateLimit)
	require.NoError(sale.Validate())
}

func TestSaleForNetwork(t *testing.T) {
	require := require.New(t)

	base := DefaultSale()

	mainnet := base.ForNetwork(models.Mainnet, testNow)
	require.Equal(base, mainnet)
	mainnet.Royalties.Accounts["tenk.sputnik-dao.near"] = 1
	require.Equal(uint32(2_500), base.Royalties.Accounts["tenk.sputnik-dao.near"])

	testnet := base.ForNetwork(models.Testnet, testNow)
	require.Nil(testnet.InitialRoyalties)
	require.Equal(uint64(testNow.UnixMilli()), *testnet.PublicSaleStart)
	require.Equal(base.Royalties, testnet.Royalties)
	require.Equal(base.Price, testnet.Price)

	// base is left untouched
	require.NotNil(base.InitialRoyalties)
	require.Equal(uint64(1651082400000), *base.PublicSaleStart)
}

func TestSaleJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(DefaultSale().ForNetwork(models.Testnet, testNow))
	require.NoError(err)

	var fields map[string]json.RawMessage
	require.NoError(json.Unmarshal(b, &fields))
	require.Equal("null", string(fields["initial_royalties"]))
	require.Equal(`"5000000000000000000000000"`, string(fields["price"]))
	require.NotContains(fields, "presale_start")
	require.NotContains(fields, "presale_price")
	require.NotContains(fields, "mint_rate_limit")
}

func TestSaleValidate(t *testing.T) {
	sale := DefaultSale()
	sale.Price = "5 N"
	require.Error(t, sale.Validate())

	sale = DefaultSale()
	sale.PresalePrice = ptr("cheap")
	require.Error(t, sale.Validate())

	sale = DefaultSale()
	sale.Royalties.Accounts["extra.near"] = 1
	require.ErrorIs(t, sale.Validate(), ErrRoyaltyShares)

	sale = DefaultSale()
	sale.InitialRoyalties = nil
	require.NoError(t, sale.Validate())
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	"fmt"
	"maps"
	"time"

	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
)

const (
	salePriceNEAR  = 5
	saleAllowance  = 3
	initialPercent = 10_000
	resalePercent  = 1_000
)

var (
	publicSaleStart = time.Date(2022, time.April, 27, 18, 0, 0, 0, time.UTC)

	royaltySplit = map[string]uint32{
		"tenk.sputnik-dao.near":    2_500,
		"project.sputnik-dao.near": 7_500,
	}
)

// Sale holds the sale terms passed to the contract. InitialRoyalties is
// always serialized so that a cleared value reaches the contract as null.
type Sale struct {
	// yoctoNEAR, u128 as a decimal string
	Price            string     `json:"price" yaml:"price"`
	Allowance        *uint32    `json:"allowance,omitempty" yaml:"allowance,omitempty"`
	PublicSaleStart  *uint64    `json:"public_sale_start,omitempty" yaml:"public_sale_start,omitempty"`
	InitialRoyalties *Royalties `json:"initial_royalties" yaml:"initial_royalties"`
	Royalties        *Royalties `json:"royalties,omitempty" yaml:"royalties,omitempty"`
	PresaleStart     *uint64    `json:"presale_start,omitempty" yaml:"presale_start,omitempty"`
	PresalePrice     *string    `json:"presale_price,omitempty" yaml:"presale_price,omitempty"`
	MintRateLimit    *uint32    `json:"mint_rate_limit,omitempty" yaml:"mint_rate_limit,omitempty"`
}

// TimestampMs converts t to milliseconds since the unix epoch, the unit the
// contract uses for sale dates.
func TimestampMs(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

func ptr[T any](v T) *T {
	return &v
}

// DefaultSale returns the production sale terms.
func DefaultSale() Sale {
	return Sale{
		Price:           near.NEAR(salePriceNEAR).String(),
		Allowance:       ptr[uint32](saleAllowance),
		PublicSaleStart: ptr(TimestampMs(publicSaleStart)),
		InitialRoyalties: &Royalties{
			Percent:  initialPercent,
			Accounts: maps.Clone(royaltySplit),
		},
		Royalties: &Royalties{
			Percent:  resalePercent,
			Accounts: maps.Clone(royaltySplit),
		},
	}
}

func (s Sale) Clone() Sale {
	c := s
	c.InitialRoyalties = s.InitialRoyalties.Clone()
	c.Royalties = s.Royalties.Clone()
	if s.Allowance != nil {
		c.Allowance = ptr(*s.Allowance)
	}
	if s.PublicSaleStart != nil {
		c.PublicSaleStart = ptr(*s.PublicSaleStart)
	}
	if s.PresaleStart != nil {
		c.PresaleStart = ptr(*s.PresaleStart)
	}
	if s.PresalePrice != nil {
		c.PresalePrice = ptr(*s.PresalePrice)
	}
	if s.MintRateLimit != nil {
		c.MintRateLimit = ptr(*s.MintRateLimit)
	}
	return c
}

// ForNetwork derives the sale terms for network without touching s. On test
// networks initial royalties are dropped and the public sale opens at now.
func (s Sale) ForNetwork(network models.Network, now time.Time) Sale {
	derived := s.Clone()
	if network.IsTestnet() {
		derived.InitialRoyalties = nil
		derived.PublicSaleStart = ptr(TimestampMs(now))
	}
	return derived
}

func (s Sale) Validate() error {
	if _, err := near.ParseYocto(s.Price); err != nil {
		return fmt.Errorf("sale price: %w", err)
	}
	if s.PresalePrice != nil {
		if _, err := near.ParseYocto(*s.PresalePrice); err != nil {
			return fmt.Errorf("presale price: %w", err)
		}
	}
	if s.InitialRoyalties != nil {
		if err := s.InitialRoyalties.Validate(); err != nil {
			return fmt.Errorf("initial royalties: %w", err)
		}
	}
	if s.Royalties != nil {
		if err := s.Royalties.Validate(); err != nil {
			return fmt.Errorf("royalties: %w", err)
		}
	}
	return nil
}

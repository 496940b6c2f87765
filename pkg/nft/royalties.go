// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// BasisPoints is the denominator of all royalty shares.
const BasisPoints = 10_000

var (
	ErrNoRoyaltyAccounts = errors.New("royalties need at least one account")
	ErrRoyaltyShares     = errors.New("royalty shares must sum to 10000 basis points")
	ErrRoyaltyPercent    = errors.New("royalty percent must be between 1 and 10000 basis points")
)

// Royalties splits Percent (in basis points of a payment) between
// Accounts, whose shares are basis points of that percent.
type Royalties struct {
	Percent  uint32            `json:"percent" yaml:"percent"`
	Accounts map[string]uint32 `json:"accounts" yaml:"accounts"`
}

func (r *Royalties) Clone() *Royalties {
	if r == nil {
		return nil
	}
	return &Royalties{
		Percent:  r.Percent,
		Accounts: maps.Clone(r.Accounts),
	}
}

func (r *Royalties) Validate() error {
	if len(r.Accounts) == 0 {
		return ErrNoRoyaltyAccounts
	}
	if r.Percent == 0 || r.Percent > BasisPoints {
		return fmt.Errorf("%w, got %d", ErrRoyaltyPercent, r.Percent)
	}
	var sum uint64
	for account, share := range r.Accounts {
		if share == 0 {
			return fmt.Errorf("%w: %s has a zero share", ErrRoyaltyShares, account)
		}
		sum += uint64(share)
	}
	if sum != BasisPoints {
		return fmt.Errorf("%w, got %d", ErrRoyaltyShares, sum)
	}
	return nil
}

// SortedAccounts returns the beneficiaries in a stable order for display.
func (r *Royalties) SortedAccounts() []string {
	return slices.Sorted(maps.Keys(r.Accounts))
}

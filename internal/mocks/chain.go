// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/stretchr/testify/mock"
)

// Chain is a mock implementation of contract.Chain
type Chain struct {
	mock.Mock
}

func (m *Chain) HasDeployedContract(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

// Signer is a mock implementation of contract.Signer
type Signer struct {
	mock.Mock
}

func (m *Signer) AccountID() string {
	args := m.Called()
	return args.String(0)
}

func (m *Signer) SignAndSend(ctx context.Context, tx *near.TransactionBuilder) (*near.FinalExecutionOutcome, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*near.FinalExecutionOutcome), args.Error(1)
}

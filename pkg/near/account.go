// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RPC is the node surface needed to sign and submit transactions.
type RPC interface {
	ViewAccessKey(ctx context.Context, accountID string, publicKey PublicKey) (*AccessKeyView, error)
	LatestBlockHash(ctx context.Context) (CryptoHash, error)
	BroadcastTxCommit(ctx context.Context, tx *SignedTransaction) (*FinalExecutionOutcome, error)
}

// Account signs transactions with a single full access key.
type Account struct {
	id  string
	key *KeyPair
	rpc RPC
	log *zap.Logger
}

func NewAccount(id string, key *KeyPair, rpc RPC, log *zap.Logger) *Account {
	if log == nil {
		log = zap.NewNop()
	}
	return &Account{id: id, key: key, rpc: rpc, log: log}
}

func (a *Account) AccountID() string {
	return a.id
}

func (a *Account) PublicKey() PublicKey {
	return a.key.PublicKey()
}

// SignAndSend fills in nonce and block hash, signs the transaction and
// broadcasts it, waiting for the final outcome.
func (a *Account) SignAndSend(ctx context.Context, b *TransactionBuilder) (*FinalExecutionOutcome, error) {
	var (
		accessKey *AccessKeyView
		blockHash CryptoHash
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accessKey, err = a.rpc.ViewAccessKey(gctx, a.id, a.key.PublicKey())
		return err
	})
	g.Go(func() error {
		var err error
		blockHash, err = a.rpc.LatestBlockHash(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tx, err := b.Build(a.id, a.key.PublicKey(), accessKey.Nonce+1, blockHash)
	if err != nil {
		return nil, err
	}
	signed, hash, err := tx.Sign(a.key)
	if err != nil {
		return nil, fmt.Errorf("failed signing transaction: %w", err)
	}
	a.log.Info("broadcasting transaction",
		zap.String("signer", a.id),
		zap.String("receiver", tx.ReceiverID),
		zap.Int("actions", len(tx.Actions)),
		zap.Uint64("nonce", tx.Nonce),
		zap.Stringer("hash", hash),
	)
	return a.rpc.BroadcastTxCommit(ctx, signed)
}

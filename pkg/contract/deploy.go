// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/ava-labs/tenk-cli/pkg/nft"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var ErrReadBinary = errors.New("failed reading contract binary")

// Chain answers read-only questions about accounts.
type Chain interface {
	HasDeployedContract(ctx context.Context, accountID string) (bool, error)
}

// Signer signs and submits transactions on behalf of a single account.
type Signer interface {
	AccountID() string
	SignAndSend(ctx context.Context, tx *near.TransactionBuilder) (*near.FinalExecutionOutcome, error)
}

type DeployRequest struct {
	// defaults to the signer account
	ContractID string
	WasmPath   string
}

// Deployer deploys the collection contract, initializing it in the same
// transaction when the target account already runs a contract.
type Deployer struct {
	fs     afero.Fs
	chain  Chain
	signer Signer
	log    *zap.Logger
	now    func() time.Time
}

func NewDeployer(fs afero.Fs, chain Chain, signer Signer, log *zap.Logger) *Deployer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deployer{
		fs:     fs,
		chain:  chain,
		signer: signer,
		log:    log,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for the test network sale start.
func (d *Deployer) WithClock(now func() time.Time) *Deployer {
	d.now = now
	return d
}

// Plan resolves the target, reads the binary and assembles the transaction
// without signing it. The binary is read before any network call.
func (d *Deployer) Plan(ctx context.Context, req DeployRequest) (*Plan, error) {
	owner := d.signer.AccountID()
	contractID := req.ContractID
	if contractID == "" {
		contractID = owner
	}
	if err := near.ValidateAccountID(contractID); err != nil {
		return nil, err
	}
	network := models.NetworkFromAccount(contractID)

	initArgs, err := nft.NewInitArgs(owner, network, d.now())
	if err != nil {
		return nil, fmt.Errorf("invalid initialization arguments: %w", err)
	}

	code, err := afero.ReadFile(d.fs, req.WasmPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadBinary, req.WasmPath, err)
	}
	codeHash := sha256.Sum256(code)

	tx := near.NewTransaction(contractID).DeployContract(code)

	deployed, err := d.chain.HasDeployedContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed checking for a contract on %s: %w", contractID, err)
	}

	plan := &Plan{
		ContractID:  contractID,
		Signer:      owner,
		Network:     network,
		WasmPath:    req.WasmPath,
		CodeSize:    len(code),
		CodeHash:    base58.Encode(codeHash[:]),
		HasContract: deployed,
		tx:          tx,
	}
	if deployed {
		argsJSON, err := initArgs.JSON()
		if err != nil {
			return nil, err
		}
		gas, err := near.ParseGas(constants.InitGas)
		if err != nil {
			return nil, err
		}
		tx.FunctionCall(constants.InitMethod, argsJSON, gas, big.NewInt(0))
		plan.InitArgs = &initArgs
	}
	d.log.Info("deployment planned",
		zap.String("contract", contractID),
		zap.Stringer("network", network),
		zap.Int("code-size", len(code)),
		zap.Bool("has-contract", deployed),
		zap.Int("actions", len(tx.Actions())),
	)
	return plan, nil
}

// Submit signs and broadcasts the planned transaction. Failures are not
// retried.
func (d *Deployer) Submit(ctx context.Context, plan *Plan) (*Result, error) {
	outcome, err := d.signer.SignAndSend(ctx, plan.tx)
	if err != nil {
		return nil, fmt.Errorf("failed submitting deployment of %s: %w", plan.ContractID, err)
	}
	res := &Result{
		ContractID:  plan.ContractID,
		TxID:        outcome.TxID(),
		ExplorerURL: plan.Network.ExplorerTxURL(outcome.TxID()),
		Outcome:     outcome,
	}
	d.log.Info("deployment submitted",
		zap.String("contract", res.ContractID),
		zap.String("tx", res.TxID),
		zap.Stringer("status", outcome.Status.Kind),
	)
	return res, nil
}

func (d *Deployer) Deploy(ctx context.Context, req DeployRequest) (*Result, error) {
	plan, err := d.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return d.Submit(ctx, plan)
}

type Result struct {
	ContractID  string
	TxID        string
	ExplorerURL string
	Outcome     *near.FinalExecutionOutcome
}

// Deployed reports whether the transaction finished with a success value.
func (r *Result) Deployed() bool {
	return r.Outcome != nil && r.Outcome.Status.IsSuccess()
}

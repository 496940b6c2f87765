// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/near/borsh-go"
)

// CryptoHash is a sha256 digest, base58 encoded on the wire.
type CryptoHash [sha256.Size]byte

func (h CryptoHash) String() string {
	return base58.Encode(h[:])
}

func ParseCryptoHash(s string) (CryptoHash, error) {
	raw := base58.Decode(s)
	if len(raw) != sha256.Size {
		return CryptoHash{}, fmt.Errorf("%w %q", ErrInvalidHash, s)
	}
	var h CryptoHash
	copy(h[:], raw)
	return h, nil
}

// Action variants, in protocol order.
const (
	ActionCreateAccount borsh.Enum = iota
	ActionDeployContract
	ActionFunctionCall
	ActionTransfer
)

type CreateAccount struct{}

type DeployContract struct {
	Code []byte
}

type FunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int
}

type Transfer struct {
	Deposit big.Int
}

// Action is a borsh complex enum: only the variant selected by Enum is
// serialized.
type Action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  CreateAccount
	DeployContract DeployContract
	FunctionCall   FunctionCall
	Transfer       Transfer
}

func (a Action) Kind() string {
	switch a.Enum {
	case ActionCreateAccount:
		return "CreateAccount"
	case ActionDeployContract:
		return "DeployContract"
	case ActionFunctionCall:
		return "FunctionCall"
	case ActionTransfer:
		return "Transfer"
	}
	return fmt.Sprintf("Unknown(%d)", a.Enum)
}

type Transaction struct {
	SignerID   string
	PublicKey  PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  CryptoHash
	Actions    []Action
}

// Hash is the sha256 of the borsh encoded transaction, which is also the
// transaction id shown by explorers.
func (tx Transaction) Hash() (CryptoHash, error) {
	bs, err := borsh.Serialize(tx)
	if err != nil {
		return CryptoHash{}, err
	}
	return sha256.Sum256(bs), nil
}

func (tx Transaction) Sign(key *KeyPair) (*SignedTransaction, CryptoHash, error) {
	hash, err := tx.Hash()
	if err != nil {
		return nil, CryptoHash{}, err
	}
	return &SignedTransaction{
		Transaction: tx,
		Signature:   key.Sign(hash[:]),
	}, hash, nil
}

type SignedTransaction struct {
	Transaction Transaction
	Signature   Signature
}

func (s SignedTransaction) Bytes() ([]byte, error) {
	return borsh.Serialize(s)
}

// Base64 is the encoding expected by broadcast_tx_* RPC methods.
func (s SignedTransaction) Base64() (string, error) {
	bs, err := s.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bs), nil
}

// TransactionBuilder collects the actions of a transaction towards a single
// receiver. Signer, nonce and block hash are filled in when it is signed.
type TransactionBuilder struct {
	receiverID string
	actions    []Action
}

func NewTransaction(receiverID string) *TransactionBuilder {
	return &TransactionBuilder{receiverID: receiverID}
}

func (b *TransactionBuilder) DeployContract(code []byte) *TransactionBuilder {
	b.actions = append(b.actions, Action{
		Enum:           ActionDeployContract,
		DeployContract: DeployContract{Code: code},
	})
	return b
}

func (b *TransactionBuilder) FunctionCall(method string, args []byte, gas Gas, deposit *big.Int) *TransactionBuilder {
	call := FunctionCall{
		MethodName: method,
		Args:       args,
		Gas:        uint64(gas),
	}
	if deposit != nil {
		call.Deposit.Set(deposit)
	}
	b.actions = append(b.actions, Action{
		Enum:         ActionFunctionCall,
		FunctionCall: call,
	})
	return b
}

func (b *TransactionBuilder) ReceiverID() string {
	return b.receiverID
}

func (b *TransactionBuilder) Actions() []Action {
	return b.actions
}

func (b *TransactionBuilder) Build(
	signerID string,
	publicKey PublicKey,
	nonce uint64,
	blockHash CryptoHash,
) (Transaction, error) {
	if len(b.actions) == 0 {
		return Transaction{}, ErrNoActions
	}
	return Transaction{
		SignerID:   signerID,
		PublicKey:  publicKey,
		Nonce:      nonce,
		ReceiverID: b.receiverID,
		BlockHash:  blockHash,
		Actions:    b.actions,
	}, nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

func writeString(b *bytes.Buffer, s string) {
	_ = binary.Write(b, binary.LittleEndian, uint32(len(s)))
	b.WriteString(s)
}

func writeBytes(b *bytes.Buffer, bs []byte) {
	_ = binary.Write(b, binary.LittleEndian, uint32(len(bs)))
	b.Write(bs)
}

func TestTransactionEncoding(t *testing.T) {
	require := require.New(t)

	kp, err := NewKeyPairFromSeed(testSeed)
	require.NoError(err)
	var blockHash CryptoHash
	for i := range blockHash {
		blockHash[i] = byte(i)
	}
	code := []byte{0x00, 0x61, 0x73, 0x6d}
	args := []byte(`{"owner_id":"alice.near"}`)

	tx, err := NewTransaction("tenk.near").
		DeployContract(code).
		FunctionCall("new_default_meta", args, 50*TGas, big.NewInt(1)).
		Build("alice.near", kp.PublicKey(), 42, blockHash)
	require.NoError(err)

	expected := &bytes.Buffer{}
	writeString(expected, "alice.near")
	expected.WriteByte(KeyTypeED25519)
	pk := kp.PublicKey()
	expected.Write(pk.Data[:])
	_ = binary.Write(expected, binary.LittleEndian, uint64(42))
	writeString(expected, "tenk.near")
	expected.Write(blockHash[:])
	_ = binary.Write(expected, binary.LittleEndian, uint32(2))
	// deploy
	expected.WriteByte(1)
	writeBytes(expected, code)
	// function call
	expected.WriteByte(2)
	writeString(expected, "new_default_meta")
	writeBytes(expected, args)
	_ = binary.Write(expected, binary.LittleEndian, uint64(50_000_000_000_000))
	deposit := make([]byte, 16)
	deposit[0] = 1
	expected.Write(deposit)

	encoded, err := borsh.Serialize(tx)
	require.NoError(err)
	require.Equal(expected.Bytes(), encoded)

	hash, err := tx.Hash()
	require.NoError(err)
	require.Equal(CryptoHash(sha256.Sum256(expected.Bytes())), hash)
}

func TestTransactionSign(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair()
	require.NoError(err)
	tx, err := NewTransaction("bob.testnet").
		DeployContract([]byte{1, 2, 3}).
		Build("bob.testnet", kp.PublicKey(), 1, CryptoHash{})
	require.NoError(err)

	signed, hash, err := tx.Sign(kp)
	require.NoError(err)
	require.True(Verify(kp.PublicKey(), hash[:], signed.Signature))

	bs, err := signed.Bytes()
	require.NoError(err)
	var decoded SignedTransaction
	require.NoError(borsh.Deserialize(&decoded, bs))
	require.Equal("bob.testnet", decoded.Transaction.ReceiverID)
	require.Len(decoded.Transaction.Actions, 1)
	require.Equal(ActionDeployContract, decoded.Transaction.Actions[0].Enum)
	require.Equal([]byte{1, 2, 3}, decoded.Transaction.Actions[0].DeployContract.Code)
	require.Equal(signed.Signature, decoded.Signature)
}

func TestBuildWithoutActions(t *testing.T) {
	_, err := NewTransaction("bob.testnet").Build("bob.testnet", PublicKey{}, 1, CryptoHash{})
	require.ErrorIs(t, err, ErrNoActions)
}

func TestActionKind(t *testing.T) {
	require := require.New(t)
	b := NewTransaction("x.near").DeployContract(nil).FunctionCall("m", nil, TGas, nil)
	require.Equal("DeployContract", b.Actions()[0].Kind())
	require.Equal("FunctionCall", b.Actions()[1].Kind())
	require.Equal(uint64(TGas), b.Actions()[1].FunctionCall.Gas)
	require.Equal(0, b.Actions()[1].FunctionCall.Deposit.Sign())
}

func TestCryptoHashString(t *testing.T) {
	require := require.New(t)
	h := CryptoHash(sha256.Sum256([]byte("block")))
	parsed, err := ParseCryptoHash(h.String())
	require.NoError(err)
	require.Equal(h, parsed)

	_, err = ParseCryptoHash("abc")
	require.ErrorIs(err, ErrInvalidHash)
}

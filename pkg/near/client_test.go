// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	ID     uint64          `json:"id"`
}

type rpcHandler func(method string, params json.RawMessage) (interface{}, *json2.Error)

// newTestNode serves JSON-RPC replies produced by handler.
func newTestNode(t *testing.T, handler rpcHandler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result, rpcErr := handler(req.Method, req.Params)
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHasDeployedContract(t *testing.T) {
	require := require.New(t)

	codeHashes := map[string]string{
		"fresh.testnet":    "11111111111111111111111111111111",
		"deployed.testnet": "E8jZ1giWcVrps8PcV75ATauu6gFRkcwjNtKp7NKmipZG",
	}
	srv := newTestNode(t, func(method string, params json.RawMessage) (interface{}, *json2.Error) {
		require.Equal("query", method)
		var q queryRequest
		require.NoError(json.Unmarshal(params, &q))
		require.Equal("view_account", q.RequestType)
		require.Equal("final", q.Finality)
		hash, ok := codeHashes[q.AccountID]
		if !ok {
			return nil, &json2.Error{
				Code:    json2.E_SERVER,
				Message: "Server error",
				Data:    "account " + q.AccountID + " does not exist while viewing",
			}
		}
		return map[string]interface{}{
			"amount":       "100",
			"code_hash":    hash,
			"block_height": 10,
		}, nil
	})
	client := NewClient(srv.URL, time.Second)

	deployed, err := client.HasDeployedContract(context.Background(), "fresh.testnet")
	require.NoError(err)
	require.False(deployed)

	deployed, err = client.HasDeployedContract(context.Background(), "deployed.testnet")
	require.NoError(err)
	require.True(deployed)

	_, err = client.HasDeployedContract(context.Background(), "ghost.testnet")
	require.Error(err)
	var rpcErr *json2.Error
	require.True(errors.As(err, &rpcErr))
	require.Contains(err.Error(), "does not exist")
}

func TestViewAccountLegacyError(t *testing.T) {
	srv := newTestNode(t, func(string, json.RawMessage) (interface{}, *json2.Error) {
		return map[string]interface{}{"error": "account ghost.near does not exist"}, nil
	})
	_, err := NewClient(srv.URL, time.Second).ViewAccount(context.Background(), "ghost.near")
	require.ErrorIs(t, err, ErrQuery)
}

func TestSendRequestHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()
	_, err := NewClient(srv.URL, time.Second).LatestBlockHash(context.Background())
	require.ErrorContains(t, err, "unexpected status")
}

func TestAccountSignAndSend(t *testing.T) {
	require := require.New(t)

	kp, err := NewKeyPairFromSeed(testSeed)
	require.NoError(err)
	blockHash := CryptoHash(sha256.Sum256([]byte("latest")))

	var (
		mu        sync.Mutex
		submitted *SignedTransaction
	)
	srv := newTestNode(t, func(method string, params json.RawMessage) (interface{}, *json2.Error) {
		switch method {
		case "query":
			var q queryRequest
			require.NoError(json.Unmarshal(params, &q))
			require.Equal("view_access_key", q.RequestType)
			require.Equal(kp.PublicKey().String(), q.PublicKey)
			return map[string]interface{}{"nonce": 41, "permission": "FullAccess"}, nil
		case "block":
			return map[string]interface{}{
				"header": map[string]interface{}{"height": 100, "hash": blockHash.String()},
			}, nil
		case "broadcast_tx_commit":
			var encoded []string
			require.NoError(json.Unmarshal(params, &encoded))
			require.Len(encoded, 1)
			raw, err := base64.StdEncoding.DecodeString(encoded[0])
			require.NoError(err)
			decoded := new(SignedTransaction)
			require.NoError(borsh.Deserialize(decoded, raw))
			mu.Lock()
			submitted = decoded
			mu.Unlock()
			hash, err := decoded.Transaction.Hash()
			require.NoError(err)
			return map[string]interface{}{
				"status":              map[string]interface{}{"SuccessValue": ""},
				"transaction":         map[string]interface{}{"hash": hash.String()},
				"transaction_outcome": map[string]interface{}{"id": hash.String()},
				"receipts_outcome":    []interface{}{},
			}, nil
		}
		return nil, &json2.Error{Code: json2.E_NO_METHOD, Message: "unknown method " + method}
	})

	account := NewAccount("bob.testnet", kp, NewClient(srv.URL, time.Second), nil)
	require.Equal("bob.testnet", account.AccountID())
	outcome, err := account.SignAndSend(
		context.Background(),
		NewTransaction("bob.testnet").DeployContract([]byte("wasm")),
	)
	require.NoError(err)
	require.True(outcome.Status.IsSuccess())

	require.NotNil(submitted)
	require.Equal(uint64(42), submitted.Transaction.Nonce)
	require.Equal(blockHash, submitted.Transaction.BlockHash)
	require.Equal("bob.testnet", submitted.Transaction.SignerID)
	hash, err := submitted.Transaction.Hash()
	require.NoError(err)
	require.Equal(hash.String(), outcome.TxID())
	require.True(Verify(kp.PublicKey(), hash[:], submitted.Signature))
}

func TestAccountSignAndSendRejected(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)
	srv := newTestNode(t, func(method string, _ json.RawMessage) (interface{}, *json2.Error) {
		switch method {
		case "query":
			return map[string]interface{}{"nonce": 1}, nil
		case "block":
			return map[string]interface{}{
				"header": map[string]interface{}{"hash": CryptoHash{1}.String()},
			}, nil
		}
		return nil, &json2.Error{
			Code:    json2.E_SERVER,
			Message: "Server error",
			Data:    map[string]interface{}{"TxExecutionError": "NotEnoughBalance"},
		}
	})
	account := NewAccount("poor.testnet", kp, NewClient(srv.URL, time.Second), nil)
	_, err = account.SignAndSend(context.Background(), NewTransaction("poor.testnet").DeployContract([]byte{1}))
	require.ErrorContains(t, err, "NotEnoughBalance")
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/gorilla/rpc/v2/json2"
)

const finalityFinal = "final"

// Client talks to a NEAR node over JSON-RPC 2.0.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) SendRequest(ctx context.Context, method string, params interface{}, reply interface{}) error {
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed encoding %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("near rpc %s: %w", method, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("near rpc %s: failed reading response: %w", method, err)
	}
	if err := json2.DecodeClientResponse(bytes.NewReader(respBody), reply); err != nil {
		var rpcErr *json2.Error
		if errors.As(err, &rpcErr) {
			if rpcErr.Data != nil {
				return fmt.Errorf("near rpc %s: %w: %v", method, err, rpcErr.Data)
			}
			return fmt.Errorf("near rpc %s: %w", method, err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("near rpc %s: unexpected status %s", method, resp.Status)
		}
		return fmt.Errorf("near rpc %s: failed decoding response: %w", method, err)
	}
	return nil
}

type queryRequest struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	PublicKey   string `json:"public_key,omitempty"`
}

// queryResult carries the legacy in-result error some nodes still return
// for query calls.
type queryResult struct {
	Error       string `json:"error,omitempty"`
	BlockHeight uint64 `json:"block_height"`
	BlockHash   string `json:"block_hash"`
}

func (q queryResult) err() error {
	if q.Error != "" {
		return fmt.Errorf("%w: %s", ErrQuery, q.Error)
	}
	return nil
}

type AccountView struct {
	queryResult
	Amount        string `json:"amount"`
	Locked        string `json:"locked"`
	CodeHash      string `json:"code_hash"`
	StorageUsage  uint64 `json:"storage_usage"`
	StoragePaidAt uint64 `json:"storage_paid_at"`
}

func (a *AccountView) HasContract() bool {
	return a.CodeHash != "" && a.CodeHash != constants.EmptyCodeHash
}

type AccessKeyView struct {
	queryResult
	Nonce      uint64      `json:"nonce"`
	Permission interface{} `json:"permission"`
}

func (c *Client) ViewAccount(ctx context.Context, accountID string) (*AccountView, error) {
	resp := new(AccountView)
	err := c.SendRequest(ctx, "query", queryRequest{
		RequestType: "view_account",
		Finality:    finalityFinal,
		AccountID:   accountID,
	}, resp)
	if err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, fmt.Errorf("view_account %s: %w", accountID, err)
	}
	return resp, nil
}

// HasDeployedContract reports whether the account currently holds contract
// code. Unknown accounts surface as an error.
func (c *Client) HasDeployedContract(ctx context.Context, accountID string) (bool, error) {
	account, err := c.ViewAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	return account.HasContract(), nil
}

func (c *Client) ViewAccessKey(ctx context.Context, accountID string, publicKey PublicKey) (*AccessKeyView, error) {
	resp := new(AccessKeyView)
	err := c.SendRequest(ctx, "query", queryRequest{
		RequestType: "view_access_key",
		Finality:    finalityFinal,
		AccountID:   accountID,
		PublicKey:   publicKey.String(),
	}, resp)
	if err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, fmt.Errorf("view_access_key %s %s: %w", accountID, publicKey, err)
	}
	return resp, nil
}

type blockRequest struct {
	Finality string `json:"finality"`
}

type blockView struct {
	Header struct {
		Height uint64 `json:"height"`
		Hash   string `json:"hash"`
	} `json:"header"`
}

func (c *Client) LatestBlockHash(ctx context.Context) (CryptoHash, error) {
	resp := new(blockView)
	if err := c.SendRequest(ctx, "block", blockRequest{Finality: finalityFinal}, resp); err != nil {
		return CryptoHash{}, err
	}
	return ParseCryptoHash(resp.Header.Hash)
}

// BroadcastTxCommit submits a signed transaction and waits until it is
// final.
func (c *Client) BroadcastTxCommit(ctx context.Context, tx *SignedTransaction) (*FinalExecutionOutcome, error) {
	encoded, err := tx.Base64()
	if err != nil {
		return nil, fmt.Errorf("failed encoding transaction: %w", err)
	}
	resp := new(FinalExecutionOutcome)
	if err := c.SendRequest(ctx, "broadcast_tx_commit", []string{encoded}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

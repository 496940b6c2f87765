// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Credentials is the near-cli key file format.
type Credentials struct {
	AccountID  string `json:"account_id"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
	SecretKey  string `json:"secret_key,omitempty"`
}

func CredentialsPath(dir string, networkID string, accountID string) string {
	return filepath.Join(dir, networkID, accountID+".json")
}

// LoadCredentials reads <dir>/<networkID>/<accountID>.json and returns the
// key pair it holds.
func LoadCredentials(fsys afero.Fs, dir string, networkID string, accountID string) (*KeyPair, error) {
	path := CredentialsPath(dir, networkID, accountID)
	bs, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for %s at %s", ErrCredentialsNotFound, accountID, path)
		}
		return nil, fmt.Errorf("failed reading credentials %s: %w", path, err)
	}
	var creds Credentials
	if err := json.Unmarshal(bs, &creds); err != nil {
		return nil, fmt.Errorf("failed parsing credentials %s: %w", path, err)
	}
	if creds.AccountID != "" && creds.AccountID != accountID {
		return nil, fmt.Errorf("credentials %s belong to %s, not %s", path, creds.AccountID, accountID)
	}
	secret := creds.PrivateKey
	if secret == "" {
		secret = creds.SecretKey
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: %s has no private key", ErrInvalidKey, path)
	}
	kp, err := ParseKeyPair(secret)
	if err != nil {
		return nil, fmt.Errorf("failed parsing private key in %s: %w", path, err)
	}
	if creds.PublicKey != "" && creds.PublicKey != kp.PublicKey().String() {
		return nil, fmt.Errorf("%s: %w", path, ErrKeyMismatch)
	}
	return kp, nil
}

// ListCredentialAccounts returns the accounts that have a key file under
// dir for any of networkIDs, sorted. Missing network directories are skipped.
func ListCredentialAccounts(fsys afero.Fs, dir string, networkIDs ...string) ([]string, error) {
	var accounts []string
	for _, networkID := range networkIDs {
		matches, err := afero.Glob(fsys, filepath.Join(dir, networkID, "*.json"))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			accounts = append(accounts, strings.TrimSuffix(filepath.Base(m), ".json"))
		}
	}
	slices.Sort(accounts)
	return slices.Compact(accounts), nil
}

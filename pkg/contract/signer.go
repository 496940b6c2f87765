// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/tenk-cli/pkg/application"
	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/ava-labs/tenk-cli/pkg/prompts"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SignerFlags selects the account that signs a transaction and where its
// key comes from.
type SignerFlags struct {
	AccountID      string
	CredentialsDir string
	PrivateKey     string
}

const (
	accountIDFlagName      = "account-id"
	credentialsDirFlagName = "credentials-dir"
	privateKeyFlagName     = "private-key"
)

// FlagSet groups the signer flags so they can be shared between commands.
func (sf *SignerFlags) FlagSet(goal string) *pflag.FlagSet {
	set := pflag.NewFlagSet("signer", pflag.ContinueOnError)
	set.StringVar(
		&sf.AccountID,
		accountIDFlagName,
		"",
		fmt.Sprintf("account to %s with (defaults to the configured account-id)", goal),
	)
	set.StringVar(
		&sf.CredentialsDir,
		credentialsDirFlagName,
		"",
		"near-cli credentials directory (default $HOME/.near-credentials)",
	)
	set.StringVar(
		&sf.PrivateKey,
		privateKeyFlagName,
		"",
		fmt.Sprintf("ed25519 private key to %s with, instead of the credentials file", goal),
	)
	return set
}

func (sf *SignerFlags) AddToCmd(cmd *cobra.Command, goal string) {
	cmd.Flags().AddFlagSet(sf.FlagSet(goal))
}

func (sf *SignerFlags) credentialsDir(app *application.Tenk) string {
	if sf.CredentialsDir != "" {
		return sf.CredentialsDir
	}
	return app.GetCredentialsDir()
}

// GetAccountID resolves the signer from the flag, then the configuration,
// then by asking the user to pick among the accounts with credentials on
// networks.
func (sf *SignerFlags) GetAccountID(app *application.Tenk, networks ...models.Network) (string, error) {
	if sf.AccountID != "" {
		return sf.AccountID, near.ValidateAccountID(sf.AccountID)
	}
	if id := app.GetDefaultAccountID(); id != "" {
		return id, near.ValidateAccountID(id)
	}
	if app.Prompt == nil {
		return "", clierrors.ErrNoSignerAccount
	}
	networkIDs := make([]string, 0, len(networks))
	for _, n := range networks {
		networkIDs = append(networkIDs, n.ID())
	}
	known, err := near.ListCredentialAccounts(app.FS, sf.credentialsDir(app), networkIDs...)
	if err != nil {
		return "", err
	}
	return prompts.CaptureAccountID(app.Prompt, "sign the deployment", known)
}

func (sf *SignerFlags) GetKeyPair(app *application.Tenk, network models.Network, accountID string) (*near.KeyPair, error) {
	if sf.PrivateKey != "" {
		return near.ParseKeyPair(sf.PrivateKey)
	}
	return near.LoadCredentials(app.FS, sf.credentialsDir(app), network.ID(), accountID)
}

var ErrDryRun = errors.New("dry run signer cannot submit transactions")

type planningSigner string

// PlanningSigner identifies accountID as the signer of a plan that is only
// rendered, never submitted.
func PlanningSigner(accountID string) Signer {
	return planningSigner(accountID)
}

func (s planningSigner) AccountID() string {
	return string(s)
}

func (planningSigner) SignAndSend(context.Context, *near.TransactionBuilder) (*near.FinalExecutionOutcome, error) {
	return nil, ErrDryRun
}

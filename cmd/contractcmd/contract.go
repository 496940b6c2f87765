// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/ava-labs/tenk-cli/pkg/application"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Tenk

// tenk contract
func NewCmd(injectedApp *application.Tenk) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage the TenK collection contract",
		Long: `The contract command suite provides tools for deploying the TenK NFT
collection contract to a NEAR account.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	return cmd
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/ava-labs/tenk-cli/pkg/application"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Tenk

func NewCmd(injectedApp *application.Tenk) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for tenk",
		Long:  `Customize configuration for tenk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
	}
	app = injectedApp
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	return cmd
}

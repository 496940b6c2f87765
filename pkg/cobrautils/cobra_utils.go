// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/tenk-cli/pkg/ux"

	"github.com/spf13/cobra"
)

// replaced in tests
var osExit = os.Exit

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := check(cmd, args)
		if err != nil {
			_ = cmd.Help()
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

func ExactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func MaximumNArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MaximumNArgs(n))
}

// HandleErrors reports err to the user and exits with status 1.
func HandleErrors(err error) {
	if err == nil {
		return
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		usageErr.cmd.Println(usageErr.cmd.UsageString())
		usageErr.cmd.Println()
		usageErr.cmd.Println(usageErr)
	} else {
		ux.Logger.RedXToUser("Error: %s", err)
	}
	osExit(1)
}

func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return NewUsageError(
			cmd,
			fmt.Errorf("invalid subcommand %q", strings.Join(args, " ")),
		)
	}
	err := cmd.Help()
	if err != nil {
		fmt.Println(err)
	}
	return nil
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}

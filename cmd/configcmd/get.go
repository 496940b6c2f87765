// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/ux"
	"github.com/spf13/cobra"
)

// tenk config get
func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "get <key>",
		Short:        "Get a configuration value",
		RunE:         getConfig,
		Args:         cobrautils.ExactArgs(1),
		SilenceUsage: true,
	}
}

func getConfig(_ *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsKnownKey(key) {
		return fmt.Errorf("%w %q", clierrors.ErrUnknownConfigKey, key)
	}
	if !app.Conf.ConfigValueIsSet(key) {
		return fmt.Errorf("%w: %s", clierrors.ErrConfigValueUnset, key)
	}
	ux.Logger.PrintToUser("%s", app.Conf.GetConfigStringValue(key))
	return nil
}

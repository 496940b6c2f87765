// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"strings"

	"github.com/ava-labs/tenk-cli/cmd/flags"
	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/ava-labs/tenk-cli/pkg/ux"
	"github.com/spf13/cobra"
)

// tenk config set
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: fmt.Sprintf(`Persist a configuration value in the CLI config file.

Supported keys: %s`, strings.Join(constants.ConfigKeys, ", ")),
		RunE:         setConfig,
		Args:         cobrautils.ExactArgs(2),
		SilenceUsage: true,
	}
}

func setConfig(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !config.IsKnownKey(key) {
		return fmt.Errorf("%w %q, expected one of %s", clierrors.ErrUnknownConfigKey, key, strings.Join(constants.ConfigKeys, ", "))
	}
	if err := validateValue(key, value); err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%s set to %s", key, value)
	return nil
}

func validateValue(key string, value string) error {
	switch key {
	case constants.ConfigAccountIDKey:
		return near.ValidateAccountID(value)
	case constants.ConfigNodeURLKey:
		return flags.ValidateNodeURL(value)
	}
	return nil
}

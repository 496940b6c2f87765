// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

const nodeURLFlag = "node-url"

// AddNodeURLFlagToCmd registers --node-url and validates it before the
// command runs.
func AddNodeURLFlagToCmd(cmd *cobra.Command, nodeURL *string) {
	cmd.Flags().StringVar(nodeURL, nodeURLFlag, "", "NEAR RPC endpoint (defaults to the public endpoint of the target network)")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return ValidateNodeURL(*nodeURL)
	}
}

func ValidateNodeURL(nodeURL string) error {
	if nodeURL == "" {
		return nil
	}
	u, err := url.ParseRequestURI(nodeURL)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", nodeURLFlag, nodeURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", nodeURLFlag, nodeURL)
	}
	return nil
}

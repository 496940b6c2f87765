// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestValidateNodeURL(t *testing.T) {
	require.NoError(t, ValidateNodeURL(""))
	require.NoError(t, ValidateNodeURL("https://rpc.testnet.near.org"))
	require.NoError(t, ValidateNodeURL("http://127.0.0.1:3030"))
	require.Error(t, ValidateNodeURL("rpc.testnet.near.org"))
	require.Error(t, ValidateNodeURL("ws://127.0.0.1:3030"))
}

func TestAddNodeURLFlagToCmd(t *testing.T) {
	require := require.New(t)

	called := false
	var nodeURL string
	cmd := &cobra.Command{
		Use: "deploy",
		PreRunE: func(*cobra.Command, []string) error {
			called = true
			return nil
		},
	}
	AddNodeURLFlagToCmd(cmd, &nodeURL)

	require.NoError(cmd.Flags().Set(nodeURLFlag, "not a url"))
	require.Error(cmd.PreRunE(cmd, nil))
	require.True(called)

	require.NoError(cmd.Flags().Set(nodeURLFlag, "http://localhost:3030"))
	require.NoError(cmd.PreRunE(cmd, nil))
}

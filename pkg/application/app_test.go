// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"
	"testing"

	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/utils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *Tenk {
	fs := afero.NewMemMapFs()
	baseDir := "/home/user/.tenk-cli"
	require.NoError(t, fs.MkdirAll(baseDir, constants.DefaultPerms755))
	conf := config.New(fs)
	conf.SetConfig(zap.NewNop(), filepath.Join(baseDir, constants.ConfigFile))
	app := New()
	app.Setup(baseDir, zap.NewNop(), conf, nil, fs)
	return app
}

func TestDefaults(t *testing.T) {
	require := require.New(t)
	app := setupTestApp(t)

	require.Equal("/home/user/.tenk-cli/logs", app.GetLogDir())
	require.Equal("/home/user/.tenk-cli/cli.json", app.GetConfigPath())
	require.Equal(constants.DefaultWasmPath, app.GetWasmPath())
	require.Equal(utils.UserHomePath(".near-credentials"), app.GetCredentialsDir())
	require.Equal(constants.MainnetRPCEndpoint, app.GetNodeURL(models.Mainnet))
	require.Equal(constants.TestnetRPCEndpoint, app.GetNodeURL(models.Testnet))
	require.Empty(app.GetDefaultAccountID())
	require.False(app.ConfigFileExists())
}

func TestConfiguredValues(t *testing.T) {
	require := require.New(t)
	app := setupTestApp(t)

	require.NoError(app.Conf.SetConfigValue(constants.ConfigNodeURLKey, "http://localhost:3030"))
	require.NoError(app.Conf.SetConfigValue(constants.ConfigWasmPathKey, "/out/tenk.wasm"))
	require.NoError(app.Conf.SetConfigValue(constants.ConfigCredentialsDirKey, "/keys"))
	require.NoError(app.Conf.SetConfigValue(constants.ConfigAccountIDKey, "alice.near"))

	require.True(app.ConfigFileExists())
	require.Equal("http://localhost:3030", app.GetNodeURL(models.Testnet))
	require.Equal("/out/tenk.wasm", app.GetWasmPath())
	require.Equal("/keys", app.GetCredentialsDir())
	require.Equal("alice.near", app.GetDefaultAccountID())
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/prompts"
	"github.com/ava-labs/tenk-cli/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Tenk struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	FS      afero.Fs
}

func New() *Tenk {
	return &Tenk{}
}

func (app *Tenk) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.FS = fs
}

func (app *Tenk) GetBaseDir() string {
	return app.baseDir
}

func (app *Tenk) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Tenk) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFile)
}

// configString returns the configured value for key, or def when unset.
func (app *Tenk) configString(key string, def string) string {
	if app.Conf != nil && app.Conf.ConfigValueIsSet(key) {
		if v := app.Conf.GetConfigStringValue(key); v != "" {
			return v
		}
	}
	return def
}

// GetCredentialsDir returns the near-cli key store, ~/.near-credentials
// unless configured otherwise.
func (app *Tenk) GetCredentialsDir() string {
	return utils.ExpandHome(app.configString(
		constants.ConfigCredentialsDirKey,
		utils.UserHomePath(constants.CredentialsDirName),
	))
}

func (app *Tenk) GetWasmPath() string {
	return utils.ExpandHome(app.configString(constants.ConfigWasmPathKey, constants.DefaultWasmPath))
}

// GetNodeURL returns the configured RPC endpoint, or the public endpoint of
// network.
func (app *Tenk) GetNodeURL(network models.Network) string {
	return app.configString(constants.ConfigNodeURLKey, network.Endpoint())
}

func (app *Tenk) GetDefaultAccountID() string {
	return app.configString(constants.ConfigAccountIDKey, "")
}

func (app *Tenk) ConfigFileExists() bool {
	return app.Conf != nil && app.Conf.ConfigFileExists()
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/utils"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the persisted CLI configuration. Values resolve from the JSON
// config file and TENK_* environment variables.
type Config struct {
	v  *viper.Viper
	fs afero.Fs
}

func New(fs afero.Fs) *Config {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v, fs: fs}
}

func (c *Config) SetConfig(log *zap.Logger, s string) {
	c.v.SetConfigType("json")
	c.v.AddConfigPath(filepath.Dir(s))
	c.v.SetConfigFile(s)
	// If a config file is found, read it in.
	if err := c.v.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found", zap.String("config-file", s))
	}
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.fs, c.GetConfigPath())
}

func IsKnownKey(key string) bool {
	return slices.Contains(constants.ConfigKeys, key)
}

// SetConfigValue sets the value of a configuration key and persists it.
func (c *Config) SetConfigValue(key string, value interface{}) error {
	if !IsKnownKey(key) {
		return clierrors.ErrUnknownConfigKey
	}
	c.v.Set(key, value)
	return c.v.WriteConfig()
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

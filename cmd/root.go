// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ava-labs/tenk-cli/cmd/configcmd"
	"github.com/ava-labs/tenk-cli/cmd/contractcmd"
	"github.com/ava-labs/tenk-cli/pkg/application"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/logging"
	"github.com/ava-labs/tenk-cli/pkg/prompts"
	"github.com/ava-labs/tenk-cli/pkg/ux"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	app        *application.Tenk
	logFactory *logging.Factory

	logLevel string
	cfgFile  string
	Version  = ""
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "tenk",
		Long: `tenk deploys the TenK NFT collection contract to NEAR accounts.

To get started, build the contract and run
tenk contract deploy --account-id <you>.testnet`,
		PersistentPreRunE:  createApp,
		PersistentPostRunE: closeLogging,
		Version:            Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tenk-cli/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	// add sub commands
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	cobrautils.ConfigureRootCmd(rootCmd)
	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	fs := afero.NewOsFs()
	cf := config.New(fs)
	configPath := cfgFile
	if configPath == "" {
		configPath = filepath.Join(baseDir, constants.ConfigFile)
	}
	cf.SetConfig(log, configPath)
	app.Setup(baseDir, log, cf, prompts.NewPrompter(), fs)
	return nil
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, constants.DefaultPerms755)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	displayLevel, err := logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	config := logging.Config{
		Directory:    filepath.Join(baseDir, constants.LogDir),
		LogLevel:     zapcore.InfoLevel,
		DisplayLevel: displayLevel,
		// some logging config params
		MaxSize:  constants.MaxLogFileSize,
		MaxFiles: constants.MaxNumOfLogFiles,
		MaxAge:   constants.RetainOldFiles,
	}
	if err := os.MkdirAll(config.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	logFactory = logging.NewFactory(config)
	log, err := logFactory.Make("tenk")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if app.Log != nil {
		_ = app.Log.Sync()
	}
	if logFactory != nil {
		logFactory.Close()
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	cobrautils.HandleErrors(err)
}

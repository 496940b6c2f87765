// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/ava-labs/tenk-cli/pkg/application"
	"github.com/ava-labs/tenk-cli/pkg/config"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/prompts"
	"github.com/ava-labs/tenk-cli/pkg/ux"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestBaseDir is the application directory of apps built by SetupTestApp.
const TestBaseDir = "/home/tester/.tenk-cli"

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard)
	return require.New(t)
}

// CaptureUserOutput redirects everything printed through ux.Logger into the
// returned buffer.
func CaptureUserOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	ux.NewUserLog(zap.NewNop(), out)
	return out
}

// SetupTestApp returns an application backed by an in-memory filesystem.
func SetupTestApp(t *testing.T, prompter prompts.Prompter) *application.Tenk {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(TestBaseDir, constants.DefaultPerms755))
	conf := config.New(fs)
	conf.SetConfig(zap.NewNop(), filepath.Join(TestBaseDir, constants.ConfigFile))

	app := application.New()
	app.Setup(TestBaseDir, zap.NewNop(), conf, prompter, fs)
	return app
}

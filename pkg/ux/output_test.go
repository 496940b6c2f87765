// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrintToUser(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zap.InfoLevel)
	out := &bytes.Buffer{}
	NewUserLog(zap.New(core), out)

	Logger.PrintToUser("deployed %s", "alice.near")
	require.Equal("deployed alice.near\n", out.String())
	require.Equal(1, logs.FilterMessage("deployed alice.near").Len())

	out.Reset()
	Logger.GreenCheckmarkToUser("done")
	require.Contains(out.String(), "✓")
	require.Contains(out.String(), "done")

	out.Reset()
	Logger.RedXToUser("failed")
	require.Contains(out.String(), "✗")

	out.Reset()
	Logger.Info("file only")
	require.Empty(out.String())
	require.Equal(1, logs.FilterMessage("file only").Len())
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "0", ConvertToStringWithThousandSeparator(0))
	require.Equal(t, "1_000", ConvertToStringWithThousandSeparator(1000))
	require.Equal(t, "50_000_000_000_000", ConvertToStringWithThousandSeparator(50_000_000_000_000))
}

func TestKeyValueTable(t *testing.T) {
	require := require.New(t)

	tbl := KeyValueTable("sale")
	tbl.AppendRow(table.Row{"allowance", 3})
	tbl.AppendRow(table.Row{"royalties", "10.00%\ntenk.sputnik-dao.near: 25.00%"})
	rendered := tbl.Render()
	require.Contains(rendered, "SALE")
	require.Contains(rendered, "allowance")
	require.Contains(rendered, "tenk.sputnik-dao.near: 25.00%")
	require.NotContains(rendered, "FIELD")
}

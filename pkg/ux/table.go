// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const keyValueMaxWidth = 64

// KeyValueTable renders a headerless two column summary: bold field names on the left,
// values (possibly multi-line) on the right.
func KeyValueTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Style().Title.Format = text.FormatUpper
	t.Style().Options.SeparateRows = true
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: keyValueMaxWidth},
	})
	t.SetTitle(title)
	return t
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import "slices"

const customOption = "Custom"

// CaptureAccountID lets the user pick one of the known accounts or type
// another one. With no known accounts it asks for the id directly.
func CaptureAccountID(prompter Prompter, goal string, known []string) (string, error) {
	promptStr := "Which account should " + goal + "?"
	if len(known) == 0 {
		return prompter.CaptureValidatedString(promptStr, ValidateAccountID)
	}
	options := append(slices.Clone(known), customOption)
	option, err := prompter.CaptureList(promptStr, options)
	if err != nil {
		return "", err
	}
	if option != customOption {
		return option, nil
	}
	return prompter.CaptureValidatedString("Account id", ValidateAccountID)
}

// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"os"

	"github.com/ava-labs/tenk-cli/pkg/near"
)

var (
	errEmptyString = errors.New("string cannot be empty")
	errFileNoExist = errors.New("file doesn't exist")
)

func validateNonEmpty(input string) error {
	if input == "" {
		return errEmptyString
	}
	return nil
}

func validateExistingFilepath(input string) error {
	if fileInfo, err := os.Stat(input); err == nil && !fileInfo.IsDir() {
		return nil
	}
	return errFileNoExist
}

// ValidateAccountID accepts named and implicit NEAR account ids.
func ValidateAccountID(input string) error {
	return near.ValidateAccountID(input)
}

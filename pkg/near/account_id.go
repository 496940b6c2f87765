// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"fmt"
	"regexp"
)

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

var accountIDRegexp = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// ValidateAccountID checks the protocol rules for account names: 2 to 64
// characters of lowercase alphanumerics, with '.', '-' and '_' used only as
// separators.
func ValidateAccountID(id string) error {
	if len(id) < minAccountIDLen || len(id) > maxAccountIDLen {
		return fmt.Errorf("%w %q: length must be between %d and %d", ErrInvalidAccountID, id, minAccountIDLen, maxAccountIDLen)
	}
	if !accountIDRegexp.MatchString(id) {
		return fmt.Errorf("%w %q", ErrInvalidAccountID, id)
	}
	return nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"fmt"
	"math/big"
	"strings"
)

// Gas is the metered execution budget attached to a function call.
type Gas uint64

const (
	GGas Gas = 1_000_000_000
	TGas Gas = 1_000 * GGas

	// yoctoNEAR per NEAR is 10^24
	nearNominationExp = 24
)

var gasUnits = []struct {
	suffix string
	exp    int
}{
	{"tgas", 12},
	{"ggas", 9},
	{"gas", 0},
}

func (g Gas) String() string {
	if g != 0 && g%TGas == 0 {
		return fmt.Sprintf("%d Tgas", uint64(g/TGas))
	}
	return fmt.Sprintf("%d gas", uint64(g))
}

// ParseGas accepts values such as "50Tgas", "50 Tgas", "1.5 Tgas", "30Ggas"
// or a bare number of gas units.
func ParseGas(s string) (Gas, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	normalized = strings.ReplaceAll(normalized, "_", "")
	exp := 0
	for _, unit := range gasUnits {
		if strings.HasSuffix(normalized, unit.suffix) {
			normalized = strings.TrimSuffix(normalized, unit.suffix)
			exp = unit.exp
			break
		}
	}
	v, err := parseDecimal(normalized, exp)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidGas, s, err)
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w %q: overflows u64", ErrInvalidGas, s)
	}
	return Gas(v.Uint64()), nil
}

var yoctoPerNEAR = new(big.Int).Exp(big.NewInt(10), big.NewInt(nearNominationExp), nil)

// NEAR returns amount NEAR in yoctoNEAR.
func NEAR(amount uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(amount), yoctoPerNEAR)
}

// ParseNEAR converts a human readable NEAR amount ("5 N", "5NEAR", "0.1")
// into yoctoNEAR.
func ParseNEAR(s string) (*big.Int, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	normalized = strings.ReplaceAll(normalized, "_", "")
	switch {
	case strings.HasSuffix(normalized, "near"):
		normalized = strings.TrimSuffix(normalized, "near")
	case strings.HasSuffix(normalized, "n"):
		normalized = strings.TrimSuffix(normalized, "n")
	}
	v, err := parseDecimal(normalized, nearNominationExp)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAmount, s, err)
	}
	if v.BitLen() > 128 {
		return nil, fmt.Errorf("%w %q: overflows u128", ErrInvalidAmount, s)
	}
	return v, nil
}

// ParseYocto parses a decimal u128 yoctoNEAR string, the JSON form of U128.
func ParseYocto(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return nil, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// FormatNEAR renders a yoctoNEAR amount as NEAR, e.g. "5 N" or "0.25 N".
func FormatNEAR(yocto *big.Int) string {
	if yocto == nil {
		return "0 N"
	}
	s := yocto.String()
	if len(s) <= nearNominationExp {
		s = strings.Repeat("0", nearNominationExp-len(s)+1) + s
	}
	whole := s[:len(s)-nearNominationExp]
	frac := strings.TrimRight(s[len(s)-nearNominationExp:], "0")
	if frac == "" {
		return whole + " N"
	}
	return whole + "." + frac + " N"
}

// parseDecimal returns num * 10^exp, rejecting fractional remainders.
func parseDecimal(num string, exp int) (*big.Int, error) {
	if num == "" {
		return nil, fmt.Errorf("empty value")
	}
	whole, frac, _ := strings.Cut(num, ".")
	if len(frac) > exp {
		return nil, fmt.Errorf("too many decimal places")
	}
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac + strings.Repeat("0", exp-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok || v.Sign() < 0 || strings.ContainsAny(digits, "+-") {
		return nil, fmt.Errorf("not a number")
	}
	return v, nil
}

// Package units converts between user-entered decimal token amounts and the
// integer base units the contract works in.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals of one whole token (1e18 base units).
const EtherDecimals int32 = 18

var ErrInvalidAmount = errors.New("invalid amount")

// ParseUnits converts a decimal string such as "1.5" into base units scaled by
// 10^decimals. Scientific notation and fractions finer than one base unit are
// rejected, as is anything outside the uint256 range.
func ParseUnits(value string, decimals int32) (*big.Int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, fmt.Errorf("%w: amount is empty", ErrInvalidAmount)
	}
	if strings.ContainsAny(s, "eE") {
		return nil, fmt.Errorf("%w: %q uses exponent notation", ErrInvalidAmount, value)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, value)
	}

	scaled := d.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, value, decimals)
	}
	amount := scaled.BigInt()
	if amount.CmpAbs(math.MaxBig256) > 0 {
		return nil, fmt.Errorf("%w: %q overflows uint256", ErrInvalidAmount, value)
	}
	return amount, nil
}

// ParseEther converts a whole-token decimal string into 18-decimal base units.
func ParseEther(value string) (*big.Int, error) {
	return ParseUnits(value, EtherDecimals)
}

// ParsePositiveEther is ParseEther restricted to amounts greater than zero.
func ParsePositiveEther(value string) (*big.Int, error) {
	amount, err := ParseEther(value)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, value)
	}
	return amount, nil
}

// FormatUnits renders base units as a decimal string. Whole amounts keep a
// trailing ".0" so "1.0" and "1" are never confused with base units.
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEther renders 18-decimal base units as whole tokens.
func FormatEther(value *big.Int) string {
	return FormatUnits(value, EtherDecimals)
}

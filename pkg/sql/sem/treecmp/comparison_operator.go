// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package treecmp defines the comparison operators that can appear in a
// CHECK constraint's expression.
package treecmp

import (
	"strconv"

	"github.com/cockroachdb/redact"
)

// ComparisonOperator represents a binary comparison operator.
type ComparisonOperator struct {
	Symbol ComparisonOperatorSymbol
}

// MakeComparisonOperator creates a ComparisonOperator given a symbol.
func MakeComparisonOperator(symbol ComparisonOperatorSymbol) ComparisonOperator {
	return ComparisonOperator{Symbol: symbol}
}

func (o ComparisonOperator) String() string {
	return o.Symbol.String()
}

// SafeValue implements the redact.SafeValue interface.
func (ComparisonOperator) SafeValue() {}

// ComparisonOperatorSymbol represents a comparison operator symbol.
type ComparisonOperatorSymbol uint8

// ComparisonExpr.Operator.Symbol
const (
	InvalidComparison ComparisonOperatorSymbol = iota
	EQ
	NE
	LT
	LE
	GT
	GE

	NumComparisonOperatorSymbols
)

var comparisonOpName = [...]string{
	InvalidComparison: "INVALID",
	EQ:                "=",
	NE:                "!=",
	LT:                "<",
	LE:                "<=",
	GT:                ">",
	GE:                ">=",
}

func (i ComparisonOperatorSymbol) String() string {
	if int(i) >= len(comparisonOpName) {
		return "ComparisonOp(" + strconv.Itoa(int(i)) + ")"
	}
	return comparisonOpName[i]
}

// SafeValue implements the redact.SafeValue interface.
func (ComparisonOperatorSymbol) SafeValue() {}

// LookupComparisonOperator returns the operator spelled by s. Both "!=" and
// "<>" name the inequality operator.
func LookupComparisonOperator(s string) (ComparisonOperator, bool) {
	if s == "<>" {
		return MakeComparisonOperator(NE), true
	}
	for sym := EQ; sym < NumComparisonOperatorSymbols; sym++ {
		if comparisonOpName[sym] == s {
			return MakeComparisonOperator(sym), true
		}
	}
	return ComparisonOperator{}, false
}

var (
	_ redact.SafeValue = ComparisonOperator{}
	_ redact.SafeValue = ComparisonOperatorSymbol(0)
)

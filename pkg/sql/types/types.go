// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package types contains the typed values that the catalog embeds in
// constraint payloads: DEFAULT values and the right-hand side of CHECK
// comparisons.
package types

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Family is the type family of a Value.
type Family uint8

const (
	// UnknownFamily is the family of the zero Value, which stands for "no
	// value".
	UnknownFamily Family = iota
	BoolFamily
	IntFamily
	FloatFamily
	DecimalFamily
	StringFamily
)

var familyNames = [...]string{
	UnknownFamily: "unknown",
	BoolFamily:    "bool",
	IntFamily:     "int",
	FloatFamily:   "float",
	DecimalFamily: "decimal",
	StringFamily:  "string",
}

func (f Family) String() string {
	if int(f) >= len(familyNames) {
		return "family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// SafeValue implements the redact.SafeValue interface.
func (Family) SafeValue() {}

// ParseFamily returns the family with the given (case-insensitive) name.
func ParseFamily(name string) (Family, error) {
	lower := strings.ToLower(name)
	for f := BoolFamily; int(f) < len(familyNames); f++ {
		if familyNames[f] == lower {
			return f, nil
		}
	}
	return UnknownFamily, errors.Newf("unknown type family %q", name)
}

// Value is an immutable typed value. A Value may be NULL within its family.
// The zero Value has UnknownFamily and represents the absence of a value.
type Value struct {
	family Family
	null   bool
	b      bool
	i      int64
	f      float64
	d      *apd.Decimal
	s      string
}

// MakeNull returns a NULL of the given family.
func MakeNull(family Family) Value { return Value{family: family, null: true} }

// MakeBool returns a BOOL value.
func MakeBool(b bool) Value { return Value{family: BoolFamily, b: b} }

// MakeInt returns an INT value.
func MakeInt(i int64) Value { return Value{family: IntFamily, i: i} }

// MakeFloat returns a FLOAT value.
func MakeFloat(f float64) Value { return Value{family: FloatFamily, f: f} }

// MakeDecimal returns a DECIMAL value. The decimal is copied.
func MakeDecimal(d *apd.Decimal) Value {
	var dd apd.Decimal
	dd.Set(d)
	return Value{family: DecimalFamily, d: &dd}
}

// MakeString returns a STRING value.
func MakeString(s string) Value { return Value{family: StringFamily, s: s} }

// ParseValue parses the textual representation of a value of the given
// family. The string "NULL" (any case) parses as a NULL of that family.
func ParseValue(family Family, s string) (Value, error) {
	if strings.EqualFold(s, "null") && family != StringFamily {
		return MakeNull(family), nil
	}
	switch family {
	case BoolFamily:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, errors.Wrapf(err, "could not parse %q as bool", s)
		}
		return MakeBool(b), nil
	case IntFamily:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, errors.Wrapf(err, "could not parse %q as int", s)
		}
		return MakeInt(i), nil
	case FloatFamily:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, errors.Wrapf(err, "could not parse %q as float", s)
		}
		return MakeFloat(f), nil
	case DecimalFamily:
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return Value{}, errors.Wrapf(err, "could not parse %q as decimal", s)
		}
		return Value{family: DecimalFamily, d: d}, nil
	case StringFamily:
		return MakeString(s), nil
	default:
		return Value{}, errors.Newf("cannot parse a value of family %s", family)
	}
}

// Family returns the value's type family.
func (v Value) Family() Family { return v.family }

// IsSet returns false for the zero Value.
func (v Value) IsSet() bool { return v.family != UnknownFamily }

// IsNull returns whether the value is a NULL.
func (v Value) IsNull() bool { return v.null }

// Bool returns the value of a BOOL.
func (v Value) Bool() bool { return v.b }

// Int returns the value of an INT.
func (v Value) Int() int64 { return v.i }

// Float returns the value of a FLOAT.
func (v Value) Float() float64 { return v.f }

// Decimal returns the value of a DECIMAL. The result must not be modified.
func (v Value) Decimal() *apd.Decimal { return v.d }

// Str returns the value of a STRING.
func (v Value) Str() string { return v.s }

// Equal returns whether two values have the same family and contents. Two
// NULLs of the same family are equal.
func (v Value) Equal(o Value) bool {
	if v.family != o.family || v.null != o.null {
		return false
	}
	if v.null {
		return true
	}
	switch v.family {
	case BoolFamily:
		return v.b == o.b
	case IntFamily:
		return v.i == o.i
	case FloatFamily:
		return v.f == o.f
	case DecimalFamily:
		return v.d.Cmp(o.d) == 0
	case StringFamily:
		return v.s == o.s
	default:
		return true
	}
}

// SafeFormat implements the redact.SafeFormatter interface. Strings are
// considered unsafe; all other values are safe.
func (v Value) SafeFormat(w redact.SafePrinter, _ rune) {
	switch {
	case !v.IsSet():
		w.SafeString("<unset>")
	case v.null:
		w.SafeString("NULL")
	case v.family == StringFamily:
		w.Printf("'%s'", strings.ReplaceAll(v.s, "'", "''"))
	default:
		w.SafeString(redact.SafeString(v.scalarString()))
	}
}

func (v Value) scalarString() string {
	switch v.family {
	case BoolFamily:
		return strconv.FormatBool(v.b)
	case IntFamily:
		return strconv.FormatInt(v.i, 10)
	case FloatFamily:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case DecimalFamily:
		return v.d.String()
	default:
		return ""
	}
}

func (v Value) String() string { return redact.StringWithoutMarkers(v) }

var (
	_ redact.SafeFormatter = Value{}
	_ redact.SafeValue     = Family(0)
)

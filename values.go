// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dxf

import (
	"errors"
	"strconv"
	"strings"
)

// maxValueLen is the longest value line the format allows.  Longer
// lines are treated as parse errors rather than being truncated.
const maxValueLen = 2049

// ValueType identifies the wire representation of a field value.
type ValueType int

// The value types used by DXF group codes.
const (
	TypeString ValueType = iota + 1
	TypeInteger
	TypeShort
	TypeReal
	TypeHandle
	TypeFlag
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeShort:
		return "Short"
	case TypeReal:
		return "Real"
	case TypeHandle:
		return "Handle"
	case TypeFlag:
		return "Flag"
	default:
		return "dxf.ValueType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value represents the decoded value of one group in a DXF file.  Seven
// types implement this interface: Integer, Short, Real, String, Handle,
// Flag, and Point.
//
// The String method of a Value returns its value-line representation.
// A Point spans several tags on the wire, one per component; its String
// method is only used for diagnostics.
type Value interface {
	String() string
}

// Integer represents a 32-bit integer group.
type Integer int64

func (x Integer) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// Short represents a 16-bit integer group.
type Short int16

func (x Short) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// Real represents a floating point group.
type Real float64

func (x Real) String() string {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + ".0"
	}
	return s
}

// String represents a text group.
type String string

func (x String) String() string {
	return string(x)
}

// Handle represents an object handle, written as hexadecimal digits
// without a prefix.  The zero Handle denotes "no handle".
type Handle uint64

func (x Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(x), 16))
}

// Flag represents a boolean group, written as 0 or 1.
type Flag bool

func (x Flag) String() string {
	if x {
		return "1"
	}
	return "0"
}

// Point represents a coordinate tuple.  On the wire a point is spread
// over up to three tags, one component at a time; two-dimensional
// fields leave the Z component at zero.
type Point [3]float64

func (x Point) String() string {
	comp := make([]string, 3)
	for i, v := range x {
		comp[i] = Real(v).String()
	}
	return strings.Join(comp, " ")
}

// zeroValue returns the zero value of the given type.
func zeroValue(t ValueType) Value {
	switch t {
	case TypeInteger:
		return Integer(0)
	case TypeShort:
		return Short(0)
	case TypeReal:
		return Real(0)
	case TypeHandle:
		return Handle(0)
	case TypeFlag:
		return Flag(false)
	default:
		return String("")
	}
}

// typeMatches reports whether v is the materialized form of a t-typed
// scalar field.
func typeMatches(v Value, t ValueType) bool {
	switch v.(type) {
	case Integer:
		return t == TypeInteger
	case Short:
		return t == TypeShort
	case Real:
		return t == TypeReal
	case String:
		return t == TypeString
	case Handle:
		return t == TypeHandle
	case Flag:
		return t == TypeFlag
	default:
		return false
	}
}

// DecodeValue converts the raw text of a value line into a typed value.
//
// Numeric values follow the format's conventions: reals may use fixed
// or exponential notation, handles are hexadecimal without prefix, and
// shorts are range-checked to 16 bits.  Errors returned by DecodeValue
// are of type [*MalformedFileError] and are non-fatal by policy; the
// decoder keeps the field's previous value and continues.
func DecodeValue(raw string, t ValueType) (Value, error) {
	if len(raw) > maxValueLen {
		return nil, &MalformedFileError{
			Err: errors.New("value line too long"),
		}
	}

	switch t {
	case TypeString:
		return String(raw), nil

	case TypeInteger:
		x, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		return Integer(x), nil

	case TypeShort:
		x, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 16)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		return Short(x), nil

	case TypeReal:
		x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		return Real(x), nil

	case TypeHandle:
		x, err := strconv.ParseUint(strings.TrimSpace(raw), 16, 64)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		return Handle(x), nil

	case TypeFlag:
		x, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		return Flag(x != 0), nil
	}

	return nil, &MalformedFileError{
		Err: errors.New("unknown value type " + t.String()),
	}
}

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

// Tag is one group in a DXF file: an integer group code together with
// the raw text of the value line.
type Tag struct {
	Code  int
	Value string
}

// Group codes with a fixed, format-wide meaning.
const (
	// CodeBoundary marks the start of a record; the tag's value names
	// the record kind.
	CodeBoundary = 0

	// CodeComment tags carry free text and are never stored in records.
	CodeComment = 999

	// maxCode is the largest group code the format reserves.
	maxCode = 1071
)

// codeValid reports whether c lies in the reserved group code range.
func codeValid(c int) bool {
	return c >= 0 && c <= maxCode
}

// DefaultValueType returns the value type the format assigns to the
// given group code range.  Schemas normally follow this assignment, but
// are free to override it for individual fields.
func DefaultValueType(code int) ValueType {
	switch {
	case code >= 0 && code <= 9:
		return TypeString
	case code >= 10 && code <= 59:
		return TypeReal
	case code >= 60 && code <= 79:
		return TypeShort
	case code >= 90 && code <= 99:
		return TypeInteger
	case code == 105:
		return TypeHandle
	case code >= 100 && code <= 109:
		return TypeString
	case code >= 110 && code <= 149:
		return TypeReal
	case code >= 160 && code <= 169:
		return TypeInteger
	case code >= 170 && code <= 179:
		return TypeShort
	case code >= 210 && code <= 239:
		return TypeReal
	case code >= 270 && code <= 289:
		return TypeShort
	case code >= 290 && code <= 299:
		return TypeFlag
	case code >= 300 && code <= 319:
		return TypeString
	case code >= 320 && code <= 369:
		return TypeHandle
	case code >= 370 && code <= 389:
		return TypeShort
	case code >= 390 && code <= 399:
		return TypeHandle
	case code >= 400 && code <= 409:
		return TypeShort
	case code >= 410 && code <= 419:
		return TypeString
	case code >= 420 && code <= 429:
		return TypeInteger
	case code >= 430 && code <= 439:
		return TypeString
	case code >= 440 && code <= 459:
		return TypeInteger
	case code >= 460 && code <= 469:
		return TypeReal
	case code >= 470 && code <= 481:
		return TypeString
	case code >= 1000 && code <= 1009:
		return TypeString
	case code >= 1010 && code <= 1059:
		return TypeReal
	case code >= 1060 && code <= 1070:
		return TypeShort
	case code == 1071:
		return TypeInteger
	default:
		return TypeString
	}
}

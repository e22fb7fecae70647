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
	"strconv"
)

// Version represents a version of the DXF format.
type Version int

// DXF versions supported by this library, named after the AutoCAD
// release which introduced them.
const (
	_ Version = iota
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
	tooHighVersion
)

var versionStrings = map[Version]string{
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// ParseVersion parses a DXF version string as found in the $ACADVER
// header variable, e.g. "AC1015".
func ParseVersion(verString string) (Version, error) {
	for ver, s := range versionStrings {
		if s == verString {
			return ver, nil
		}
	}
	return 0, errVersion
}

// ToString returns the $ACADVER representation of ver, e.g. "AC1015".
// If ver does not correspond to a supported DXF version, an error is
// returned.
func (ver Version) ToString() (string, error) {
	s, ok := versionStrings[ver]
	if !ok {
		return "", errVersion
	}
	return s, nil
}

func (ver Version) String() string {
	versionString, ok := versionStrings[ver]
	if !ok {
		versionString = "dxf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return versionString
}

// Context carries the format version and the modal flags consulted while
// deciding which fields to read or write.  A Context is created once per
// decode or encode session and is never modified mid-record.
type Context struct {
	// Version is the format version of the file being read or written.
	Version Version

	// Flatland enables the pre-R11 two-dimensional mode, in which
	// entities have no independent Z coordinates and elevation groups
	// take their place.
	Flatland bool

	// Warn, if non-nil, receives non-fatal diagnostics: unknown group
	// codes, values which could not be parsed, and similar damage which
	// does not abort decoding.
	Warn func(error)
}

// Supports reports whether the context's version lies in the inclusive
// range [min, max].  A zero min or max leaves the corresponding end of
// the range open.
//
// Supports is used by both the decoder and the encoder, so that a field
// written under some version can always be read back under the same
// version.
func (ctx *Context) Supports(min, max Version) bool {
	if min != 0 && ctx.Version < min {
		return false
	}
	if max != 0 && ctx.Version > max {
		return false
	}
	return true
}

func (ctx *Context) warn(err error) {
	if ctx.Warn != nil {
		ctx.Warn(err)
	}
}

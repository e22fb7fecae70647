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
)

var (
	errVersion = errors.New("unsupported DXF version")

	// ErrChainNotTerminated indicates an attempt to release a record
	// which is still linked into a [Chain].
	ErrChainNotTerminated = errors.New("record still linked into a chain")
)

// Error is a simple error message.
type Error string

func (err Error) Error() string {
	return string(err)
}

// MalformedFileError indicates that part of a DXF file could not be
// parsed.  Errors of this type are non-fatal: the decoder reports them
// through the [Context] warning hook and continues with the next tag.
type MalformedFileError struct {
	// Line is the 1-based line number where the problem was found,
	// or 0 if the position is unknown.
	Line int

	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (at line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid DXF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// ValidationError indicates that a record failed its schema's
// consistency check and was not written.
type ValidationError struct {
	// Kind is the record kind, e.g. "LINE".
	Kind string

	Err error
}

func (err *ValidationError) Error() string {
	return "invalid " + err.Kind + " record: " + err.Err.Error()
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

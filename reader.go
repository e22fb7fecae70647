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
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// TagReader reads successive tags from a DXF stream.
//
// Each call to [TagReader.ReadTag] consumes exactly one tag, i.e. two
// physical lines.  The reader keeps a line count for diagnostics.  After
// an I/O error the reader enters a terminal failed state and every
// further call returns the same error without touching the underlying
// stream again.
type TagReader struct {
	// OnComment, if non-nil, receives the text of comment tags
	// (group code 999).  Comments are consumed by the reader and are
	// never returned from ReadTag.
	OnComment func(line int, text string)

	r    *bufio.Reader
	line int

	unread bool
	last   Tag

	err error
}

// NewTagReader prepares a DXF stream for reading.
func NewTagReader(r io.Reader) *TagReader {
	return &TagReader{
		r: bufio.NewReader(r),
	}
}

// Line returns the number of lines read so far.
func (r *TagReader) Line() int {
	return r.line
}

// ReadTag reads the next tag from the stream.  At the end of the stream
// the error is [io.EOF]; a stream ending in the middle of a tag yields
// an error wrapping [io.ErrUnexpectedEOF].
//
// Errors of type [*MalformedFileError] leave the reader usable: reading
// resumes at the following line.  All other errors are I/O failures and
// are permanent.
func (r *TagReader) ReadTag() (Tag, error) {
	if r.err != nil {
		return Tag{}, r.err
	}
	if r.unread {
		r.unread = false
		return r.last, nil
	}

	for {
		codeText, err := r.readLine()
		if err != nil {
			// A missing line before the first byte of a tag is a
			// clean end of input.
			return Tag{}, r.fail(err)
		}

		codeLine := r.line
		code, convErr := strconv.Atoi(strings.TrimSpace(codeText))

		value, err := r.readLine()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				return Tag{}, &MalformedFileError{Line: codeLine, Err: err}
			}
			return Tag{}, r.fail(err)
		}

		if convErr != nil {
			return Tag{}, &MalformedFileError{Line: codeLine, Err: convErr}
		}
		if !codeValid(code) {
			return Tag{}, &MalformedFileError{
				Line: codeLine,
				Err:  errors.New("group code " + strconv.Itoa(code) + " out of range"),
			}
		}

		if code == CodeComment {
			if r.OnComment != nil {
				r.OnComment(codeLine, value)
			}
			continue
		}

		r.last = Tag{Code: code, Value: value}
		return r.last, nil
	}
}

// Unread pushes the most recently read tag back onto the stream, so
// that the next call to ReadTag returns it again.  Only one tag can be
// pushed back at a time.  This is used to report a record boundary to
// the caller without consuming it.
func (r *TagReader) Unread() {
	if r.err == nil {
		r.unread = true
	}
}

// fail records err as the reader's terminal state if it is an I/O
// failure.  io.EOF is passed through unchanged, so that the caller can
// distinguish a clean end of input.
func (r *TagReader) fail(err error) error {
	if err != io.EOF {
		r.err = err
	}
	return err
}

// readLine reads one physical line, not including the line terminator.
// Both "\n" and "\r\n" terminators are accepted.  A final line without
// terminator counts as a line.
func (r *TagReader) readLine() (string, error) {
	s, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return "", err
		}
	}
	r.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

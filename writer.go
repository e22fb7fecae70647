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
	"fmt"
	"io"
)

// TagWriter appends tags to a DXF stream in the two-line wire form.
//
// Output is buffered.  The encoder flushes at record boundaries, so
// that a record is either absent from the output or starts at its first
// tag; partial records are never interleaved.  After an I/O error the
// writer is unusable and every further call returns the same error.
type TagWriter struct {
	w   *bufio.Writer
	err error
}

// NewTagWriter prepares a DXF stream for writing.
func NewTagWriter(w io.Writer) *TagWriter {
	return &TagWriter{
		w: bufio.NewWriter(w),
	}
}

// WriteTag appends one tag to the stream.  The group code is written
// right-aligned to three columns, matching reference output.
func (w *TagWriter) WriteTag(t Tag) error {
	if w.err != nil {
		return w.err
	}
	_, err := fmt.Fprintf(w.w, "%3d\n%s\n", t.Code, t.Value)
	if err != nil {
		w.err = err
	}
	return err
}

// WriteComment appends a comment tag (group code 999) to the stream.
func (w *TagWriter) WriteComment(text string) error {
	return w.WriteTag(Tag{Code: CodeComment, Value: text})
}

// Flush writes any buffered tags to the underlying stream.
func (w *TagWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	if err != nil {
		w.err = err
	}
	return err
}

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
	"io"
)

// Session couples a tag stream with a [Context] for the duration of a
// decode or encode run.  The file-level driver owns the underlying
// streams and decides, from the boundary tags it reads, which schema
// applies to each record.
//
// A session must not be shared between goroutines.  Schemas, in
// contrast, are safe to share between any number of concurrent
// sessions.
type Session struct {
	ctx      Context
	r        *TagReader
	w        *TagWriter
	rc, wc   io.Closer
	warnings []error
}

// NewSession opens a session on the given streams.  Either r or w may
// be nil for a one-directional session.  A nil ctx selects the current
// format version with no modal flags.
//
// Non-fatal diagnostics are collected and can be retrieved with
// [Session.Warnings]; a Warn hook in ctx additionally receives each
// diagnostic as it occurs.
func NewSession(r io.Reader, w io.Writer, ctx *Context) *Session {
	s := &Session{}
	if ctx != nil {
		s.ctx = *ctx
	} else {
		s.ctx.Version = R2018
	}

	warn := s.ctx.Warn
	s.ctx.Warn = func(err error) {
		s.warnings = append(s.warnings, err)
		if warn != nil {
			warn(err)
		}
	}

	if r != nil {
		s.r = NewTagReader(r)
		if c, ok := r.(io.Closer); ok {
			s.rc = c
		}
	}
	if w != nil {
		s.w = NewTagWriter(w)
		if c, ok := w.(io.Closer); ok {
			s.wc = c
		}
	}
	return s
}

// Reader returns the session's tag reader, e.g. for installing a
// comment hook or for inspecting boundary tags.  The result is nil for
// write-only sessions.
func (s *Session) Reader() *TagReader {
	return s.r
}

// DecodeNext reads the next record from the session's input stream,
// which must start with a boundary tag matching the given schema.
// At the end of the input the error is [io.EOF].
func (s *Session) DecodeNext(schema *Schema) (*Record, error) {
	if s.r == nil {
		return nil, Error("session is write-only")
	}
	return DecodeRecord(schema, s.r, &s.ctx)
}

// Encode appends a record to the session's output stream.
func (s *Session) Encode(rec *Record, schema *Schema) error {
	if s.w == nil {
		return Error("session is read-only")
	}
	return EncodeRecord(rec, schema, s.w, &s.ctx)
}

// Warnings returns the non-fatal diagnostics collected so far, in
// order of occurrence.
func (s *Session) Warnings() []error {
	return s.warnings
}

// Close flushes any buffered output and closes the underlying streams,
// where they support closing.
func (s *Session) Close() error {
	var firstErr error
	if s.w != nil {
		firstErr = s.w.Flush()
	}
	if s.wc != nil {
		if err := s.wc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.rc != nil {
		if err := s.rc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

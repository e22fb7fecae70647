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

// Package dxf implements the tag-value layer of the DXF drawing
// interchange format.
//
// A DXF file is a flat stream of tags.  Each tag occupies two physical
// lines: an integer group code, which identifies the meaning and type of
// the value, followed by the value itself.  A group code of 0 marks the
// start of a new record; the value of such a tag names the record kind
// (for example "LINE" or "LAYER").
//
// This package contains the generic machinery shared by all record kinds:
// [TagReader] and [TagWriter] move tags between Go values and the
// two-line wire form, and [DecodeRecord] and [EncodeRecord] convert
// between tag streams and typed [Record] values, driven by a per-kind
// [Schema].  Field tables for the common record kinds are provided by the
// entity and table subpackages; callers can construct their own schemas
// for kinds not covered there.
//
// Decoding is deliberately forgiving: unknown group codes and values
// which cannot be parsed are reported through the [Context] warning hook
// and do not abort the record.  Only I/O errors terminate a session.
package dxf

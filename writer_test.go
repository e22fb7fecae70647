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
	"bytes"
	"errors"
	"testing"
)

func TestWriteTags(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTagWriter(buf)

	tags := []Tag{
		{0, "LINE"},
		{8, "Walls"},
		{10, "1.5"},
		{1040, "0.5"},
	}
	for _, tag := range tags {
		if err := w.WriteTag(tag); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	expected := "  0\nLINE\n  8\nWalls\n 10\n1.5\n1040\n0.5\n"
	if buf.String() != expected {
		t.Errorf("expected %q but got %q", expected, buf.String())
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestWriterStickyError(t *testing.T) {
	wrapped := errors.New("no space left")
	w := NewTagWriter(&failingWriter{err: wrapped})

	// The buffered writer only hits the device on flush.
	if err := w.WriteTag(Tag{0, "LINE"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); !errors.Is(err, wrapped) {
		t.Fatalf("expected wrapped I/O error but got %v", err)
	}
	if err := w.WriteTag(Tag{8, "Walls"}); !errors.Is(err, wrapped) {
		t.Errorf("expected writer to stay failed but got %v", err)
	}
}

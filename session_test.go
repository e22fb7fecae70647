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
	"io"
	"strings"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	in := "0\nLINE\n8\nWalls\n10\n1.0\n20\n2.0\n30\n0.0\n" +
		"11\n3.0\n21\n4.0\n31\n0.0\n" +
		"0\nLINE\n11\n5.0\n21\n6.0\n31\n0.0\n"
	buf := &bytes.Buffer{}
	s := NewSession(strings.NewReader(in), buf, &Context{Version: R2000})

	chain := &Chain{}
	for {
		rec, err := s.DecodeNext(testLine)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if err := chain.Append(rec); err != nil {
			t.Fatal(err)
		}
	}
	if chain.Len() != 2 {
		t.Fatalf("expected 2 records but got %d", chain.Len())
	}

	for rec := range chain.All() {
		if err := s.Encode(rec, testLine); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// The output must decode to the same records.
	s2 := NewSession(bytes.NewReader(buf.Bytes()), nil, &Context{Version: R2000})
	i := 0
	for rec := range chain.All() {
		rec2, err := s2.DecodeNext(testLine)
		if err != nil {
			t.Fatal(err)
		}
		if !rec.Equal(rec2) {
			t.Errorf("record %d changed across round trip", i)
		}
		i++
	}
	if len(s2.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", s2.Warnings())
	}

	if err := chain.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSessionWarnings(t *testing.T) {
	in := "0\nLINE\n123\nsurprise\n39\nthick\n"
	var hookCalls int
	ctx := &Context{
		Version: R2000,
		Warn:    func(err error) { hookCalls++ },
	}
	s := NewSession(strings.NewReader(in), nil, ctx)

	_, err := s.DecodeNext(testLine)
	if err != nil {
		t.Fatal(err)
	}
	if hookCalls != 2 {
		t.Errorf("expected 2 warning hook calls but got %d", hookCalls)
	}
	if len(s.Warnings()) != 2 {
		t.Errorf("expected 2 collected warnings but got %d", len(s.Warnings()))
	}
}

func TestSessionDirections(t *testing.T) {
	s := NewSession(strings.NewReader(""), nil, nil)
	if err := s.Encode(NewRecord(testLine), testLine); err == nil {
		t.Error("read-only session accepted a record")
	}

	s = NewSession(nil, &bytes.Buffer{}, nil)
	if _, err := s.DecodeNext(testLine); err == nil {
		t.Error("write-only session returned a record")
	}
}

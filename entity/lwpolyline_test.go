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

package entity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf"
)

func TestVertices(t *testing.T) {
	in := "0\nLWPOLYLINE\n90\n3\n70\n1\n" +
		"10\n0.0\n20\n0.0\n" +
		"10\n10.0\n20\n0.0\n" +
		"10\n10.0\n20\n5.0\n"
	rec, err := dxf.DecodeRecord(LWPolyline,
		dxf.NewTagReader(strings.NewReader(in)),
		&dxf.Context{Version: dxf.R2000})
	if err != nil {
		t.Fatal(err)
	}

	pts := Vertices(rec)
	expected := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}
	if d := cmp.Diff(expected, pts); d != "" {
		t.Errorf("unexpected vertices (-expected, +got):\n%s", d)
	}
}

func TestSetVertices(t *testing.T) {
	rec := dxf.NewRecord(LWPolyline)
	pts := []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	SetVertices(rec, pts)

	if n := rec.Value(LWPolyline.SlotIndex("VertexCount")); n != dxf.Integer(2) {
		t.Errorf("vertex count not updated: %v", n)
	}
	if d := cmp.Diff(pts, Vertices(rec)); d != "" {
		t.Errorf("unexpected vertices (-expected, +got):\n%s", d)
	}

	// replacing the vertices must not accumulate
	SetVertices(rec, pts[:1])
	if got := Vertices(rec); len(got) != 1 {
		t.Errorf("expected 1 vertex after replacement but got %d", len(got))
	}
}

func TestLWPolylineRoundTrip(t *testing.T) {
	rec := dxf.NewRecord(LWPolyline)
	SetVertices(rec, []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}})
	rec.Append(LWPolyline.SlotIndex("Bulges"), dxf.Real(0.5))
	rec.Append(LWPolyline.SlotIndex("Bulges"), dxf.Real(0))
	rec.Append(LWPolyline.SlotIndex("Bulges"), dxf.Real(-0.25))
	rec.SetValue(LWPolyline.SlotIndex("Flags"), dxf.Short(1))

	ctx := &dxf.Context{Version: dxf.R2000}
	buf := &bytes.Buffer{}
	err := dxf.EncodeRecord(rec, LWPolyline, dxf.NewTagWriter(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}

	rec2, err := dxf.DecodeRecord(LWPolyline, dxf.NewTagReader(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Equal(rec2) {
		t.Error("record changed across round trip")
	}
}

// Vertices written flat must come back without their Z components, so
// that 2D output remains readable for importers which only understand
// two-component points.
func TestLWPolylineFlat(t *testing.T) {
	rec := dxf.NewRecord(LWPolyline)
	SetVertices(rec, []vec.Vec2{{X: 1, Y: 2}})

	buf := &bytes.Buffer{}
	err := dxf.EncodeRecord(rec, LWPolyline, dxf.NewTagWriter(buf),
		&dxf.Context{Version: dxf.R2000})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\n 30\n") {
		t.Errorf("2-tuple field wrote a Z component:\n%s", buf.String())
	}
}

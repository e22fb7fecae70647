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

package table

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/dxf"
)

func TestLookup(t *testing.T) {
	for _, kind := range []string{"LAYER", "LTYPE", "STYLE", "VPORT"} {
		s := Lookup(kind)
		if s == nil {
			t.Errorf("%s: no schema", kind)
			continue
		}
		if s.Kind != kind {
			t.Errorf("%s: schema has kind %q", kind, s.Kind)
		}
	}
	if Lookup("APPID") != nil {
		t.Error("unexpected schema for unsupported kind")
	}
}

func TestDecodeLayer(t *testing.T) {
	in := "0\nLAYER\n2\nWalls\n70\n0\n62\n3\n6\nDASHED\n290\n0\n"
	rec, err := dxf.DecodeRecord(Layer,
		dxf.NewTagReader(strings.NewReader(in)),
		&dxf.Context{Version: dxf.R2004})
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		field    string
		expected dxf.Value
	}{
		{"Name", dxf.String("Walls")},
		{"Flags", dxf.Short(0)},
		{"Color", dxf.Short(3)},
		{"Linetype", dxf.String("DASHED")},
		{"Plot", dxf.Flag(false)},
		{"Lineweight", dxf.Short(-3)},
	} {
		if got := rec.Value(Layer.SlotIndex(c.field)); got != c.expected {
			t.Errorf("%s: expected %v but got %v", c.field, c.expected, got)
		}
	}
}

// Layer fields introduced with R2000 must not leak into older files.
func TestLayerVersionGating(t *testing.T) {
	rec := dxf.NewRecord(Layer)
	rec.SetValue(Layer.SlotIndex("Name"), dxf.String("Walls"))
	rec.SetValue(Layer.SlotIndex("Plot"), dxf.Flag(false))
	rec.SetValue(Layer.SlotIndex("Lineweight"), dxf.Short(50))

	for _, c := range []struct {
		version  dxf.Version
		expected bool
	}{
		{dxf.R12, false},
		{dxf.R14, false},
		{dxf.R2000, true},
		{dxf.R2018, true},
	} {
		buf := &bytes.Buffer{}
		err := dxf.EncodeRecord(rec, Layer, dxf.NewTagWriter(buf),
			&dxf.Context{Version: c.version})
		if err != nil {
			t.Fatal(err)
		}
		got := strings.Contains(buf.String(), "\n290\n") &&
			strings.Contains(buf.String(), "\n370\n")
		if got != c.expected {
			t.Errorf("%s: expected plot fields %t but got %t",
				c.version, c.expected, got)
		}
	}
}

func TestLayerValidation(t *testing.T) {
	rec := dxf.NewRecord(Layer)
	rec.SetValue(Layer.SlotIndex("Name"), dxf.String(""))

	err := dxf.EncodeRecord(rec, Layer, dxf.NewTagWriter(io.Discard),
		&dxf.Context{Version: dxf.R2000})
	var invalid *dxf.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *dxf.ValidationError but got %v", err)
	}
	if invalid.Kind != "LAYER" {
		t.Errorf("expected kind LAYER but got %q", invalid.Kind)
	}
}

func TestLinetypeElements(t *testing.T) {
	in := "0\nLTYPE\n2\nDASHED\n70\n0\n3\ndash dash\n72\n65\n" +
		"73\n2\n40\n0.75\n49\n0.5\n49\n-0.25\n"
	ctx := &dxf.Context{Version: dxf.R2000}
	rec, err := dxf.DecodeRecord(Linetype,
		dxf.NewTagReader(strings.NewReader(in)), ctx)
	if err != nil {
		t.Fatal(err)
	}

	elems := rec.List(Linetype.SlotIndex("Elements"))
	expected := []dxf.Value{dxf.Real(0.5), dxf.Real(-0.25)}
	if d := cmp.Diff(expected, elems); d != "" {
		t.Errorf("unexpected dash pattern (-expected, +got):\n%s", d)
	}

	buf := &bytes.Buffer{}
	err = dxf.EncodeRecord(rec, Linetype, dxf.NewTagWriter(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	rec2, err := dxf.DecodeRecord(Linetype, dxf.NewTagReader(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Equal(rec2) {
		t.Error("record changed across round trip")
	}
}

func TestViewportTuples(t *testing.T) {
	in := "0\nVPORT\n2\n*ACTIVE\n70\n0\n" +
		"10\n0.0\n20\n0.0\n11\n1.0\n21\n1.0\n" +
		"12\n210.0\n22\n148.5\n40\n297.0\n41\n1.41\n"
	ctx := &dxf.Context{Version: dxf.R2000}
	rec, err := dxf.DecodeRecord(Viewport,
		dxf.NewTagReader(strings.NewReader(in)), ctx)
	if err != nil {
		t.Fatal(err)
	}

	center := rec.Value(Viewport.SlotIndex("Center"))
	if center != (dxf.Point{210, 148.5, 0}) {
		t.Errorf("unexpected center %v", center)
	}
	if snap := rec.Value(Viewport.SlotIndex("SnapSpacing")); snap != (dxf.Point{10, 10, 0}) {
		t.Errorf("snap spacing default lost: %v", snap)
	}

	buf := &bytes.Buffer{}
	err = dxf.EncodeRecord(rec, Viewport, dxf.NewTagWriter(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 2-tuple fields must not grow Z components
	if strings.Contains(buf.String(), "\n 30\n") {
		t.Errorf("2-tuple field wrote a Z component:\n%s", buf.String())
	}
	rec2, err := dxf.DecodeRecord(Viewport, dxf.NewTagReader(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Equal(rec2) {
		t.Error("record changed across round trip")
	}
}

func TestStyleRoundTrip(t *testing.T) {
	rec := dxf.NewRecord(Style)
	rec.SetValue(Style.SlotIndex("Name"), dxf.String("NOTES"))
	rec.SetValue(Style.SlotIndex("Height"), dxf.Real(2.5))
	rec.SetValue(Style.SlotIndex("Font"), dxf.String("simplex"))

	ctx := &dxf.Context{Version: dxf.R12}
	buf := &bytes.Buffer{}
	err := dxf.EncodeRecord(rec, Style, dxf.NewTagWriter(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	rec2, err := dxf.DecodeRecord(Style, dxf.NewTagReader(buf), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Equal(rec2) {
		t.Error("record changed across round trip")
	}
}

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
	"seehuhn.de/go/dxf"
	"seehuhn.de/go/geom/vec"
)

// LWPolyline is the field table for LWPOLYLINE entities (R13 and
// newer): a lightweight polyline whose 2D vertices are stored inline.
//
// The elevation group 38 is read- and write-valid in all versions
// carrying the entity; some producers treat it as deprecated, and a
// consumer wanting to reject it can derive a table with a Max version
// on that slot.
var LWPolyline = must(dxf.NewSchema("LWPOLYLINE", append(common(),
	dxf.FieldSlot{Name: "VertexCount", Code: 90, Type: dxf.TypeInteger,
		Mandatory: true, Min: dxf.R13},
	dxf.FieldSlot{Name: "Flags", Code: 70, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "ConstWidth", Code: 43, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Elevation", Code: 38, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Thickness", Code: 39, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Vertices", Code: 10, Tuple: []int{20},
		Type: dxf.TypeReal, Repeated: true},
	dxf.FieldSlot{Name: "StartWidths", Code: 40, Type: dxf.TypeReal,
		Repeated: true},
	dxf.FieldSlot{Name: "EndWidths", Code: 41, Type: dxf.TypeReal,
		Repeated: true},
	dxf.FieldSlot{Name: "Bulges", Code: 42, Type: dxf.TypeReal,
		Repeated: true},
	dxf.FieldSlot{Name: "Extrusion", Code: 210, Tuple: []int{220, 230},
		Type: dxf.TypeReal, Default: dxf.Point{0, 0, 1}},
), nil))

// Vertices returns the vertices of an LWPOLYLINE record as 2D vectors.
func Vertices(rec *dxf.Record) []vec.Vec2 {
	list := rec.List(LWPolyline.SlotIndex("Vertices"))
	res := make([]vec.Vec2, len(list))
	for i, v := range list {
		p := v.(dxf.Point)
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}

// SetVertices replaces the vertices of an LWPOLYLINE record and keeps
// the vertex count group consistent.
func SetVertices(rec *dxf.Record, pts []vec.Vec2) {
	i := LWPolyline.SlotIndex("Vertices")
	rec.SetList(i, nil)
	for _, p := range pts {
		rec.Append(i, dxf.Point{p.X, p.Y, 0})
	}
	rec.SetValue(LWPolyline.SlotIndex("VertexCount"), dxf.Integer(len(pts)))
}

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
)

// The heavyweight polyline of older files is a sequence of records:
// one POLYLINE, one VERTEX per vertex, and a closing SEQEND.  The
// file-level driver is responsible for keeping the sequence together;
// each record decodes independently.

// Polyline is the field table for POLYLINE entities.
var Polyline = must(dxf.NewSchema("POLYLINE", append(common(),
	// always 1 in files written by AutoCAD: vertices follow
	dxf.FieldSlot{Name: "VerticesFollow", Code: 66, Type: dxf.TypeShort,
		Default: dxf.Short(1), Mandatory: true},
	dxf.FieldSlot{Name: "Elevation", Code: 10, Tuple: []int{20, 30},
		Type: dxf.TypeReal, Mandatory: true},
	dxf.FieldSlot{Name: "Thickness", Code: 39, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Flags", Code: 70, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "StartWidth", Code: 40, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "EndWidth", Code: 41, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "MCount", Code: 71, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "NCount", Code: 72, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "SmoothType", Code: 75, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "Extrusion", Code: 210, Tuple: []int{220, 230},
		Type: dxf.TypeReal, Default: dxf.Point{0, 0, 1}},
), nil))

// Vertex is the field table for VERTEX records following a POLYLINE.
var Vertex = must(dxf.NewSchema("VERTEX", append(common(),
	dxf.FieldSlot{Name: "Position", Code: 10, Tuple: []int{20, 30},
		Type: dxf.TypeReal, Mandatory: true},
	dxf.FieldSlot{Name: "StartWidth", Code: 40, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "EndWidth", Code: 41, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Bulge", Code: 42, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Flags", Code: 70, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "Tangent", Code: 50, Type: dxf.TypeReal},
), nil))

// SeqEnd is the field table for the SEQEND record closing a POLYLINE
// sequence.  It carries no fields of its own.
var SeqEnd = must(dxf.NewSchema("SEQEND", common(), nil))
